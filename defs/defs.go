package defs

const (
	Port = 3000

	DefaultContactTo = "Info@florixtechnologies.com"

	// pixels, narrower viewports are treated as mobile
	MobileBreakpoint = 768
)

const (
	EnvSendGridKey = "SENDGRID_API_KEY"
	EnvContactTo   = "CONTACT_TO"
	EnvContactFrom = "CONTACT_FROM"
)
