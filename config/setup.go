package config

import (
	"github.com/davecgh/go-spew/spew"
)

var log = NamedLogger("config")

// SetupConfig reads environment and site file on top of defaults.
// Flags are applied by the caller afterwards, see ApplySite.
func SetupConfig() (*Config, error) {
	conf := Default()
	if err := ReadEnv(conf); err != nil {
		return nil, err
	}
	return conf, nil
}

// ApplySite loads conf.SitePath, if set, into conf.Site and sets logging level.
func ApplySite(conf *Config) error {
	if err := SetLoggingLevel(conf.LoggingLevel); err != nil {
		return err
	}
	if conf.SitePath != "" {
		if err := LoadSite(conf.SitePath, &conf.Site); err != nil {
			return err
		}
		log.Infof("site file %s loaded", conf.SitePath)
	} else {
		log.Warn("site file is not defined. Using default site constants")
	}
	log.Debugf("config:\n%s", spew.Sdump(conf))
	return nil
}
