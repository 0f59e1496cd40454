package config

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/markdingo/dnsrev/normalizer"
)

func TestLoad(t *testing.T) {
	cfg, err := Load("testdata/dnsrev.conf")
	require.NoError(t, err)

	assert.Equal(t, BuiltinNormalizer, cfg.Normalizer)
	assert.Equal(t, normalizer.DefaultCompileZone, cfg.CompileZone)

	require.Len(t, cfg.Forward, 2)
	assert.Equal(t, filepath.Join("testdata", "db.example.net"), cfg.Forward[0].File)
	assert.Equal(t, "example.net", cfg.Forward[0].Domain)
	assert.Equal(t, "/etc/bind/db.co.example.net", cfg.Forward[1].File, "absolute paths are unchanged")

	require.Len(t, cfg.Reverse, 3)
	assert.Equal(t, filepath.Join("testdata", "db.192.168.0"), cfg.Reverse[0].File)
	assert.Equal(t, "", cfg.Reverse[0].Zone)
	assert.Equal(t, "2001:db8::/48", cfg.Reverse[1].Subnet)
	assert.Equal(t, "64/26.1.168.192.in-addr.arpa", cfg.Reverse[2].Zone)

	_, ok := cfg.NewNormalizer().(*normalizer.Builtin)
	assert.True(t, ok, "expected builtin normalizer")
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("testdata/minimal.conf")
	require.NoError(t, err)
	assert.Equal(t, CompileZoneNormalizer, cfg.Normalizer)

	cz, ok := cfg.NewNormalizer().(*normalizer.CompileZone)
	require.True(t, ok, "expected compilezone normalizer")
	assert.Equal(t, normalizer.DefaultCompileZone, cz.Program)

	ipNet, err := cfg.Reverse[0].Network()
	require.NoError(t, err)
	assert.Equal(t, "192.168.0.0/24", ipNet.String(), "host bits are masked")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DNSREV_NORMALIZER", "builtin")
	t.Setenv("DNSREV_COMPILEZONE", "/opt/bind/sbin/named-compilezone")

	cfg, err := Load("testdata/minimal.conf")
	require.NoError(t, err)
	assert.Equal(t, BuiltinNormalizer, cfg.Normalizer)
	assert.Equal(t, "/opt/bind/sbin/named-compilezone", cfg.CompileZone)
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		path     string
		contains string
	}{
		{"testdata/noexist.conf", "noexist.conf"},
		{"testdata/empty.conf", "Forward"},
		{"testdata/noreverse.conf", "Reverse"},
		{"testdata/badcidr.conf", "cidr"},
		{"testdata/badnormalizer.conf", "oneof"},
		{"testdata/nofile.conf", "File"},
		{"testdata/syntax.conf", "syntax.conf"},
	}

	for _, tc := range testCases {
		t.Run(filepath.Base(tc.path), func(t *testing.T) {
			_, err := Load(tc.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.contains)
		})
	}
}

func TestLoadEnvFailure(t *testing.T) {
	orig := envLoader
	envLoader = func(k *koanf.Koanf) error {
		return errors.New("mocked error")
	}
	defer func() { envLoader = orig }()

	_, err := Load("testdata/minimal.conf")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mocked error")
}

func TestDomainValidation(t *testing.T) {
	v := newValidator()
	testCases := []struct {
		zone ReverseZone
		ok   bool
	}{
		{ReverseZone{File: "f", Subnet: "192.168.1.64/26", Zone: "64/26.1.168.192.in-addr.arpa."}, true},
		{ReverseZone{File: "f", Subnet: "192.168.1.64/26", Zone: "64-127.1.168.192.in-addr.arpa"}, true},
		{ReverseZone{File: "f", Subnet: "192.168.1.64/26"}, true},
		{ReverseZone{File: "f", Subnet: "192.168.1.64/26", Zone: "bad zone"}, false},
		{ReverseZone{File: "f", Subnet: "192.168.1.64/26", Zone: "a..b"}, false},
		{ReverseZone{File: "f", Subnet: "not-a-cidr"}, false},
		{ReverseZone{Subnet: "192.168.1.64/26"}, false},
	}
	for ix, tc := range testCases {
		err := v.Struct(tc.zone)
		assert.Equal(t, tc.ok, err == nil, "case %d: %v", ix, err)
	}
}
