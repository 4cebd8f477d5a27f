package showcase

// Author is the sender shown on a chat message.
type Author struct {
	Name   string `yaml:"name" koanf:"name"`
	Avatar string `yaml:"avatar" koanf:"avatar"`
	// Bot adds the app badge next to the name.
	Bot bool `yaml:"bot" koanf:"bot"`
}

// Meta decorates the messages of the mock chat.
type Meta struct {
	User      Author `yaml:"user" koanf:"user"`
	Bot       Author `yaml:"bot" koanf:"bot"`
	Timestamp string `yaml:"timestamp" koanf:"timestamp"`
}

// DefaultMeta is the chat the landing page has always shown.
func DefaultMeta() Meta {
	return Meta{
		User:      Author{Name: "Phil the Phoenix"},
		Bot:       Author{Name: "UChiVerify", Avatar: "/assets/img/logo.svg", Bot: true},
		Timestamp: "Today at 12:05 PM",
	}
}
