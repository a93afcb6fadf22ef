package scaffold

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/phpmono/phpmono/internal/envfile"
	"github.com/phpmono/phpmono/internal/workspace"
)

// Settings carries the runtime configuration an installer chose for a new
// application. Secrets are generated exactly once, in NewSettings, so a
// retried install never silently rotates a key already shown to the user.
type Settings struct {
	AppName     string
	Environment string
	URL         string
	AppKey      string // Laravel-style base64 key
	AppSecret   string // Symfony-style hex secret
}

// NewSettings builds install settings for an application name, generating
// the secrets that frameworks expect at install time.
func NewSettings(appName string) Settings {
	return Settings{
		AppName:     appName,
		Environment: "local",
		URL:         fmt.Sprintf("http://%s.test", appName),
		AppKey:      generateAppKey(),
		AppSecret:   generateHexSecret(),
	}
}

func generateAppKey() string {
	buf := make([]byte, 32)
	_, _ = rand.Read(buf)
	return "base64:" + base64.StdEncoding.EncodeToString(buf)
}

func generateHexSecret() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}

// ConfigProvider builds the environment-file operations one framework
// needs after scaffolding.
type ConfigProvider interface {
	Framework() workspace.Framework
	BuildOperations(s Settings) []envfile.Operation
}

// ProviderFor returns the config provider for a framework. Unknown
// frameworks get the skeleton provider.
func ProviderFor(f workspace.Framework) ConfigProvider {
	switch f {
	case workspace.FrameworkLaravel:
		return laravelProvider{}
	case workspace.FrameworkSymfony:
		return symfonyProvider{}
	case workspace.FrameworkMagento:
		return magentoProvider{}
	default:
		return skeletonProvider{}
	}
}

type laravelProvider struct{}

func (laravelProvider) Framework() workspace.Framework { return workspace.FrameworkLaravel }

func (laravelProvider) BuildOperations(s Settings) []envfile.Operation {
	return []envfile.Operation{
		{
			File:   ".env",
			Action: envfile.ActionSet,
			Pairs: []envfile.Pair{
				{Key: "APP_NAME", Value: s.AppName},
				{Key: "APP_ENV", Value: s.Environment},
				{Key: "APP_KEY", Value: s.AppKey},
				{Key: "APP_DEBUG", Value: "true"},
				{Key: "APP_URL", Value: s.URL},
				{Key: "DB_CONNECTION", Value: "sqlite"},
				{Key: "CACHE_STORE", Value: "file"},
				{Key: "QUEUE_CONNECTION", Value: "sync"},
			},
		},
	}
}

type symfonyProvider struct{}

func (symfonyProvider) Framework() workspace.Framework { return workspace.FrameworkSymfony }

func (symfonyProvider) BuildOperations(s Settings) []envfile.Operation {
	return []envfile.Operation{
		{
			File:   ".env.local",
			Action: envfile.ActionSet,
			Pairs: []envfile.Pair{
				{Key: "APP_ENV", Value: "dev"},
				{Key: "APP_SECRET", Value: s.AppSecret},
				{Key: "DATABASE_URL", Value: "sqlite:///%kernel.project_dir%/var/data.db"},
			},
		},
	}
}

type magentoProvider struct{}

func (magentoProvider) Framework() workspace.Framework { return workspace.FrameworkMagento }

func (magentoProvider) BuildOperations(s Settings) []envfile.Operation {
	return []envfile.Operation{
		{
			File:   ".env",
			Action: envfile.ActionSet,
			Pairs: []envfile.Pair{
				{Key: "MAGE_MODE", Value: "developer"},
				{Key: "BASE_URL", Value: s.URL},
				{Key: "ADMIN_URI", Value: "admin"},
				{Key: "CRYPT_KEY", Value: s.AppSecret},
			},
		},
	}
}

type skeletonProvider struct{}

func (skeletonProvider) Framework() workspace.Framework { return workspace.FrameworkSkeleton }

func (skeletonProvider) BuildOperations(s Settings) []envfile.Operation {
	return []envfile.Operation{
		{
			File:   ".env",
			Action: envfile.ActionSet,
			Pairs: []envfile.Pair{
				{Key: "APP_NAME", Value: s.AppName},
				{Key: "APP_ENV", Value: s.Environment},
			},
		},
	}
}
