package fiscalid_test

import (
	"testing"

	"github.com/ncabrera/purchasing_backend/internal/utils/fiscalid"
	"github.com/stretchr/testify/assert"
)

func TestValidate_Cedula(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{
			name: "valid cedula",
			raw:  "00112345673", // weighted sum 30
			want: true,
		},
		{
			name: "valid cedula with hyphens",
			raw:  "001-1234567-3",
			want: true,
		},
		{
			name: "valid cedula with spaces",
			raw:  " 001 1234567 3 ",
			want: true,
		},
		{
			name: "check digit off by one",
			raw:  "00112345674",
			want: false,
		},
		{
			name: "single middle digit corrupted",
			raw:  "00122345673",
			want: false,
		},
		{
			name: "weighted sum not divisible by ten",
			raw:  "00112345678", // weighted sum 35
			want: false,
		},
		{
			name: "letter embedded in digits",
			raw:  "0011234567a",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fiscalid.Validate(tt.raw))
		})
	}
}

func TestValidate_RNC(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{
			name: "valid rnc starting with 1",
			raw:  "131234569", // sum 112, r=2, check 9
			want: true,
		},
		{
			name: "valid rnc starting with 4",
			raw:  "400000013", // sum 30, r=8, check 3
			want: true,
		},
		{
			name: "valid rnc with hyphens",
			raw:  "131-23456-9",
			want: true,
		},
		{
			name: "remainder zero requires check digit 1",
			raw:  "400000081", // sum 44, r=0
			want: true,
		},
		{
			name: "remainder one requires check digit 1",
			raw:  "400000031", // sum 34, r=1
			want: true,
		},
		{
			name: "wrong check digit",
			raw:  "131234567", // r=2 wants check 9
			want: false,
		},
		{
			name: "first digit outside allowed set",
			raw:  "231234569",
			want: false,
		},
		{
			name: "first digit changed on otherwise valid rnc",
			raw:  "200000081",
			want: false,
		},
		{
			name: "letter embedded in digits",
			raw:  "13123456x",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fiscalid.Validate(tt.raw))
		})
	}
}

func TestValidate_Length(t *testing.T) {
	assert.False(t, fiscalid.Validate(""))
	assert.False(t, fiscalid.Validate("12345"))
	assert.False(t, fiscalid.Validate("123456789012"))
	assert.False(t, fiscalid.Validate("---"))
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{
			name: "rnc",
			raw:  "130112345",
			want: "130-11234-5",
		},
		{
			name: "cedula",
			raw:  "00112345673",
			want: "001-1234567-3",
		},
		{
			name: "already formatted cedula",
			raw:  "001-1234567-3",
			want: "001-1234567-3",
		},
		{
			name: "mixed separators discarded",
			raw:  " 001.1234567/3 ",
			want: "001-1234567-3",
		},
		{
			name: "unrecognized length returned unchanged",
			raw:  "12345",
			want: "12345",
		},
		{
			name: "empty input returned unchanged",
			raw:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fiscalid.Format(tt.raw))
		})
	}
}

func TestFormat_Idempotent(t *testing.T) {
	for _, raw := range []string{"00112345673", "130112345", "131234569"} {
		once := fiscalid.Format(raw)
		assert.Equal(t, once, fiscalid.Format(once))
	}
}
