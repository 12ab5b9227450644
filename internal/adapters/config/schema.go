package config

// catalogueFile is the on-disk shape of the domain catalogue.
type catalogueFile struct {
	Domains *[]domainDTO `yaml:"domains"`
}

// domainDTO is one catalogue entry as written in YAML.
type domainDTO struct {
	Profile       string     `yaml:"profile"`
	MinConfidence *float64   `yaml:"min_confidence"`
	Signals       signalsDTO `yaml:"signals"`
}

type signalsDTO struct {
	Directories []string `yaml:"directories"`
	Files       []string `yaml:"files"`
	Frameworks  []string `yaml:"frameworks"`
	Keywords    []string `yaml:"keywords"`
}
