package main

import (
	"fmt"
)

// runReports lists available reports, or prints one report's definition.
func runReports(args []string, env *Environment) error {
	flags, positional, err := parseReportsFlags(args, env)
	if err != nil {
		return err
	}
	if len(positional) > 1 {
		printReportsUsage(env.Stderr)
		return fmt.Errorf("%w: reports takes at most one name", ErrUsage)
	}

	cfg, err := loadConfig(env, flags.common.config)
	if err != nil {
		return err
	}
	if flags.assetPath != "" {
		cfg.Assets.BasePath = flags.assetPath
	}

	loader, err := reportLoader(env, cfg)
	if err != nil {
		return err
	}

	if len(positional) == 1 {
		data, err := loader.LoadReport(positional[0])
		if err != nil {
			return err
		}
		_, err = env.Stdout.Write(data)
		return err
	}

	names, err := loader.ListReports()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(env.Stdout, name)
	}
	return nil
}
