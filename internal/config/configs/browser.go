package configs

import "time"

// Browser configures the Chrome session used to load the ads library.
type Browser struct {
	// RemoteURL is the DevTools websocket of an external Chrome. Empty
	// launches a local one.
	RemoteURL       string        `env:"REMOTE_URL"`
	Headless        bool          `env:"HEADLESS" envDefault:"true"`
	NavTimeout      time.Duration `env:"NAV_TIMEOUT" envDefault:"30s"`
	CookieWait      time.Duration `env:"COOKIE_WAIT" envDefault:"7s"`
	Scrolls         int           `env:"SCROLLS" envDefault:"5"`
	ScrollPause     time.Duration `env:"SCROLL_PAUSE" envDefault:"2s"`
	Settle          time.Duration `env:"SETTLE" envDefault:"5s"`
	DownloadTimeout time.Duration `env:"DOWNLOAD_TIMEOUT" envDefault:"15s"`
}
