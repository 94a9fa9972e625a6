// conf/defaults.go default values for settings
package conf

import (
	"github.com/spf13/viper"
)

// Sets default values for the configuration.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("input.path", "")
	viper.SetDefault("input.recursive", false)

	viper.SetDefault("output.file.enabled", true)
	viper.SetDefault("output.file.path", "output/")
	viper.SetDefault("output.file.format", "table")
	viper.SetDefault("output.sqlite.enabled", false)
	viper.SetDefault("output.sqlite.path", "wolfvue.db")

	viper.SetDefault("classifier.confidencethreshold", 0.25)
	viper.SetDefault("classifier.dominantspeciesthreshold", 0.7)
	viper.SetDefault("classifier.maxspeciestransitions", 5)
	viper.SetDefault("classifier.consecutiveemptyframes", 30)
	viper.SetDefault("classifier.unknownsharethreshold", 0.10)

	viper.SetDefault("taxonomy.path", "")

	viper.SetDefault("processing.workers", 0)
}

// defaultConfigYaml returns the content written to a fresh config file.
func defaultConfigYaml() string {
	return `# WolfVue-Go configuration

debug: false

input:
  path: ""
  recursive: false

output:
  file:
    enabled: true
    path: output/
    format: table # table, csv or json
  sqlite:
    enabled: false
    path: wolfvue.db

classifier:
  confidencethreshold: 0.25      # minimum detection confidence, 0.0-1.0
  dominantspeciesthreshold: 0.7  # dominance ratio a species must exceed
  maxspeciestransitions: 5       # species transitions tolerated per video
  consecutiveemptyframes: 30     # empty-frame gap that splits clusters
  unknownsharethreshold: 0.10    # unknown-species share that forces Unsorted

taxonomy:
  path: "" # custom taxonomy YAML, empty for the built-in catalog

processing:
  workers: 0 # videos classified in parallel, 0 = number of CPUs
`
}
