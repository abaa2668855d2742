// Package config loads seqkit configuration from YAML files, .env files and
// environment variables using Viper.
//
// Lookup order, later sources win: the YAML file, then variables from the
// .env file, then the process environment. Environment keys are matched
// against nested config keys by trying every split of the underscore-joined
// name, so PIPELINE_BUFFER_LIMIT reaches pipeline.buffer_limit.
//
// # Usage
//
//	var cfg AppConfig
//	err := config.LoadConfig("seqkit", &cfg, config.WithConfigFile(path))
package config
