/*
Package config loads the dnsrev configuration file which lists the forward zones to read
and the reverse zones to maintain. The file is TOML:

	normalizer  = "compilezone"                    # or "builtin"
	compilezone = "/usr/sbin/named-compilezone"

	[[forward]]
	file   = "db.example.net"
	domain = "example.net"

	[[reverse]]
	file   = "db.192.168.0"
	subnet = "192.168.0.0/24"

	[[reverse]]
	file   = "db.192.168.1.64"
	subnet = "192.168.1.64/26"
	zone   = "64/26.1.168.192.in-addr.arpa"        # Optional, normally derived

Relative file names are relative to the directory containing the configuration file.
The scalar settings can be overridden with DNSREV_NORMALIZER and DNSREV_COMPILEZONE.
*/
package config

import (
	"fmt"
	"net"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"github.com/miekg/dns"

	"github.com/markdingo/dnsrev/normalizer"
)

const (
	DefaultPath = "./dnsrev.conf"
	EnvPrefix   = "DNSREV_"

	CompileZoneNormalizer = "compilezone"
	BuiltinNormalizer     = "builtin"
)

type ForwardZone struct {
	File   string `koanf:"file" validate:"required"`
	Domain string `koanf:"domain" validate:"required,domain"`
}

type ReverseZone struct {
	File   string `koanf:"file" validate:"required"`
	Subnet string `koanf:"subnet" validate:"required,cidr"`
	Zone   string `koanf:"zone" validate:"omitempty,domain"` // Explicit zone name, e.g. for rfc2317
}

// Network returns the parsed subnet. Host bits, if any, are masked off.
func (t ReverseZone) Network() (*net.IPNet, error) {
	_, ipNet, err := net.ParseCIDR(t.Subnet)

	return ipNet, err
}

// Config is the validated content of the configuration file. Forward and Reverse retain
// the file order.
type Config struct {
	Normalizer  string        `koanf:"normalizer" validate:"required,oneof=compilezone builtin"`
	CompileZone string        `koanf:"compilezone" validate:"required"`
	Forward     []ForwardZone `koanf:"forward" validate:"required,min=1,dive"`
	Reverse     []ReverseZone `koanf:"reverse" validate:"required,min=1,dive"`
}

// defaults only contains scalars so that it never masks the zone lists.
type defaults struct {
	Normalizer  string `koanf:"normalizer"`
	CompileZone string `koanf:"compilezone"`
}

// envLoader loads DNSREV_* environment variables with the prefix removed and the key
// lower-cased. It is a variable so tests can replace it.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), value
		},
	}), nil)
}

// Load reads, validates and returns the configuration file at path.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	err := k.Load(structs.Provider(defaults{
		Normalizer:  CompileZoneNormalizer,
		CompileZone: normalizer.DefaultCompileZone,
	}, "koanf"), nil)
	if err != nil {
		return nil, fmt.Errorf("error loading defaults: %w", err)
	}

	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, fmt.Errorf("error loading %s: %w", path, err)
	}

	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling %s: %w", path, err)
	}

	if err := newValidator().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("%s validation failed: %w", path, err)
	}

	cfg.resolvePaths(filepath.Dir(path))

	return &cfg, nil
}

// NewNormalizer returns the normalizer selected by the configuration.
func (t *Config) NewNormalizer() normalizer.Normalizer {
	if t.Normalizer == BuiltinNormalizer {
		return normalizer.NewBuiltin()
	}

	return normalizer.NewCompileZone(t.CompileZone)
}

func (t *Config) resolvePaths(dir string) {
	for ix := range t.Forward {
		t.Forward[ix].File = resolve(dir, t.Forward[ix].File)
	}
	for ix := range t.Reverse {
		t.Reverse[ix].File = resolve(dir, t.Reverse[ix].File)
	}
}

func resolve(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}

	return filepath.Join(dir, path)
}

// newValidator adds a "domain" validation which accepts anything miekg accepts as a
// domain name, since rfc2317 zone names such as 64/26.1.168.192.in-addr.arpa fail the
// stricter hostname checks.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterValidation("domain", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		if len(s) == 0 || strings.ContainsAny(s, " \t") {
			return false
		}
		_, ok := dns.IsDomainName(s)
		return ok
	})

	return v
}
