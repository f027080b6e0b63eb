package main

import (
	"flag"
	"fmt"
	"os"
	"regexp"

	log "github.com/sirupsen/logrus"

	"spkconfig/configmanager"
	"spkconfig/configvalues"
	"spkconfig/presenter"
)

var version = "dev"

var identifierRegex = regexp.MustCompile(`^[a-z0-9_.-]+$`)

func validateConfigDir(path string) error {
	if path == "" {
		return fmt.Errorf("config directory cannot be empty")
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat config directory %s: %w", path, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("config path %s exists but is not a directory", path)
	}

	return nil
}

func main() {
	identifier := flag.String("id", "sulfurpotassiummod", "Mod identifier, used as the config file base name")
	configDir := flag.String("dir", "", "Directory holding the config file")
	displayVersion := flag.Bool("version", false, "Display application version")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if *debug {
		log.SetLevel(log.DebugLevel)
		log.Debugln("Debug logging enabled.")
	} else {
		log.SetLevel(log.InfoLevel)
	}

	if *displayVersion {
		fmt.Printf("Sulfur & Potassium Config Tool Version: %s\n", version)
		os.Exit(0)
	}

	if !identifierRegex.MatchString(*identifier) {
		log.WithField("argument", "id").Fatalf("Error: Invalid mod identifier: %q", *identifier)
	}
	if err := validateConfigDir(*configDir); err != nil {
		log.WithField("argument", "dir").Fatalf("Error validating config directory: %v", err)
	}

	manager := configmanager.New(configvalues.Defaults())
	manager.Init(*identifier, *configDir)

	presenter.PrintSettings(os.Stdout, manager.Path(), manager.Values())
}
