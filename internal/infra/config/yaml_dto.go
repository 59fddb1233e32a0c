package config

type YAMLCatalog struct {
	Name  string     `yaml:"name"`
	Books []YAMLBook `yaml:"books"`
}

type YAMLBook struct {
	Title  string `yaml:"title"`
	Author string `yaml:"author"`
	Year   *int   `yaml:"year"`
}
