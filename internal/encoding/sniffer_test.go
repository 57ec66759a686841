package encoding

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "finlens/internal/errors"
)

func TestDecodeRejectsSpreadsheetBinaries(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"xlsx zip container", []byte{0x50, 0x4B, 0x03, 0x04, 0x14, 0x00}},
		{"legacy xls ole2", []byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.data)
			require.Error(t, err)
			assert.True(t, apierrors.IsFormatError(err))
			assert.Contains(t, err.Error(), "disguised spreadsheet binary")
		})
	}
}

func TestDecodeEncodings(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want string
	}{
		{
			name: "plain utf-8",
			data: []byte("ticker,year,Doanh thu thuần\n"),
			want: "ticker,year,Doanh thu thuần\n",
		},
		{
			name: "utf-8 with BOM strips the BOM",
			data: append([]byte{0xEF, 0xBB, 0xBF}, []byte("ticker,value")...),
			want: "ticker,value",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.data)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeFallsBackForInvalidUTF8(t *testing.T) {
	// 0xD5 is not valid standalone UTF-8, so the windows-1258 candidate
	// picks it up.
	got, err := Decode([]byte{'a', ',', 0xD5})
	require.NoError(t, err)
	assert.True(t, len(got) >= 3)
	assert.Equal(t, "a,", got[:2])
}

func TestDecodeEmptyOrInvisible(t *testing.T) {
	for _, data := range [][]byte{nil, []byte(""), []byte("   \n\t  \n")} {
		_, err := Decode(data)
		require.Error(t, err)
		assert.True(t, apierrors.IsFormatError(err))
		assert.Contains(t, err.Error(), "empty or undecodable file")
	}
}
