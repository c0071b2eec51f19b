package config

import (
	"fmt"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// AuditDefaults are the analysis settings applied when a request does not
// override them. They live in audit.yml so operators can tune them
// without a redeploy.
type AuditDefaults struct {
	ExpectedLanguage     string `mapstructure:"expectedLanguage"`
	MinDescriptionLength int    `mapstructure:"minDescriptionLength"`
	NearDuplicateLimit   int    `mapstructure:"nearDuplicateLimit"`
}

func DefaultAuditDefaults() AuditDefaults {
	return AuditDefaults{
		ExpectedLanguage:     "cs",
		MinDescriptionLength: 100,
		NearDuplicateLimit:   500,
	}
}

// SupportedLanguages the language detector can distinguish.
var SupportedLanguages = []string{"cs", "de", "en"}

type AuditDefaultsHolder struct {
	current atomic.Value // holds AuditDefaults
}

func NewAuditDefaultsHolder() (*AuditDefaultsHolder, error) {
	v := viper.New()

	v.SetConfigName("audit")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/feedscope/config") // Volume-mounted config
	v.AddConfigPath("/etc/feedscope")            // System config
	v.AddConfigPath(".")                         // Current directory (dev mode)

	v.SetEnvPrefix("FEEDSCOPE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		defaults := DefaultAuditDefaults()
		v.SetDefault("audit.expectedLanguage", defaults.ExpectedLanguage)
		v.SetDefault("audit.minDescriptionLength", defaults.MinDescriptionLength)
		v.SetDefault("audit.nearDuplicateLimit", defaults.NearDuplicateLimit)
	}

	var cfg AuditDefaults
	if err := v.UnmarshalKey("audit", &cfg); err != nil {
		return nil, err
	}
	if err := validateAuditDefaults(cfg); err != nil {
		return nil, err
	}

	holder := &AuditDefaultsHolder{}
	holder.current.Store(cfg)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated AuditDefaults
		if err := v.UnmarshalKey("audit", &updated); err != nil {
			log.Printf("[audit-config] reload failed: %v", err)
			return
		}
		if err := validateAuditDefaults(updated); err != nil {
			log.Printf("[audit-config] invalid config ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[audit-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *AuditDefaultsHolder) Get() AuditDefaults {
	return h.current.Load().(AuditDefaults)
}

func validateAuditDefaults(cfg AuditDefaults) error {
	if !IsSupportedLanguage(cfg.ExpectedLanguage) {
		return fmt.Errorf("audit.expectedLanguage %q is not one of %v", cfg.ExpectedLanguage, SupportedLanguages)
	}
	if cfg.MinDescriptionLength <= 0 {
		return fmt.Errorf("audit.minDescriptionLength must be positive, got %d", cfg.MinDescriptionLength)
	}
	if cfg.NearDuplicateLimit <= 0 {
		return fmt.Errorf("audit.nearDuplicateLimit must be positive, got %d", cfg.NearDuplicateLimit)
	}
	return nil
}

func IsSupportedLanguage(lang string) bool {
	for _, supported := range SupportedLanguages {
		if lang == supported {
			return true
		}
	}
	return false
}
