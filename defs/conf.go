package defs

import (
	"fmt"
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"
)

type SiteConf struct {
	Addr string `yaml:"addr"`

	// choreography table served to browsers and watched for changes
	Choreography string `yaml:"choreography"`
	Watch        bool   `yaml:"watch"`

	Mail MailConf `yaml:"mail"`
}

type MailConf struct {
	Key      string `yaml:"key"`
	To       string `yaml:"to"`
	From     string `yaml:"from"`
	Endpoint string `yaml:"endpoint"` // empty means the public SendGrid API
	Timeout  int    `yaml:"timeout"`  // seconds
}

// LoadSiteConf reads the yaml file at name and applies environment overrides.
// An empty name yields the defaults plus environment.
func LoadSiteConf(name string) (c *SiteConf, err error) {
	c = &SiteConf{}
	if name != "" {
		var cont []byte
		if cont, err = ioutil.ReadFile(name); err != nil {
			return nil, fmt.Errorf("defs: read %s: %w", name, err)
		}
		if err = yaml.Unmarshal(cont, c); err != nil {
			return nil, fmt.Errorf("defs: unmarshal %s: %w", name, err)
		}
	}
	c.applyEnv(os.Getenv)
	if c.Addr == "" {
		c.Addr = fmt.Sprintf(":%d", Port)
	}
	if c.Mail.Timeout <= 0 {
		c.Mail.Timeout = 10
	}
	return c, nil
}

func (c *SiteConf) applyEnv(getenv func(string) string) {
	if v := getenv(EnvSendGridKey); v != "" {
		c.Mail.Key = v
	}
	if v := getenv(EnvContactTo); v != "" {
		c.Mail.To = v
	}
	if v := getenv(EnvContactFrom); v != "" {
		c.Mail.From = v
	}
}

// Recipient falls back to the company inbox.
func (m MailConf) Recipient() string {
	if m.To != "" {
		return m.To
	}
	return DefaultContactTo
}

// Sender falls back to the recipient.
func (m MailConf) Sender() string {
	if m.From != "" {
		return m.From
	}
	return m.Recipient()
}
