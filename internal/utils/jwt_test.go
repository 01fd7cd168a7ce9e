package utils

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer  = "lives-stolen"
	testSignKey = "test-sign-key"
)

func TestGenerateAdminToken_RoundTrip(t *testing.T) {
	token, err := GenerateAdminToken(testIssuer, "reviewer@shop", time.Hour, testSignKey)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := ParseAdminToken(token, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, "reviewer@shop", subject)
}

func TestGenerateAdminToken_InvalidParams(t *testing.T) {
	cases := []struct {
		name     string
		issuer   string
		subject  string
		duration time.Duration
		key      string
	}{
		{"empty issuer", "", "sub", time.Hour, testSignKey},
		{"empty subject", testIssuer, "", time.Hour, testSignKey},
		{"zero duration", testIssuer, "sub", 0, testSignKey},
		{"empty key", testIssuer, "sub", time.Hour, ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := GenerateAdminToken(tc.issuer, tc.subject, tc.duration, tc.key)
			assert.Error(t, err)
		})
	}
}

func TestParseAdminToken_WrongKey(t *testing.T) {
	token, err := GenerateAdminToken(testIssuer, "reviewer@shop", time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ParseAdminToken(token, "another-key", testIssuer)
	assert.Error(t, err)
}

func TestParseAdminToken_WrongIssuer(t *testing.T) {
	token, err := GenerateAdminToken(testIssuer, "reviewer@shop", time.Hour, testSignKey)
	require.NoError(t, err)

	_, err = ParseAdminToken(token, testSignKey, "someone-else")
	assert.Error(t, err)
}

func TestParseAdminToken_Expired(t *testing.T) {
	token, err := GenerateAdminToken(testIssuer, "reviewer@shop", time.Nanosecond, testSignKey)
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = ParseAdminToken(token, testSignKey, testIssuer)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "expired"))
}

func TestParseBearerToken(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"lowercase scheme", "bearer abc", "abc", false},
		{"missing token", "Bearer ", "", true},
		{"no scheme", "abc.def.ghi", "", true},
		{"empty header", "", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseBearerToken(tc.header)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
