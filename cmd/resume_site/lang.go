package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-site/internal/language"
)

var langCmd = &cobra.Command{
	Use:   "lang",
	Short: "Manage the persisted language preference",
}

var langConfigFile string

var langShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current language preference",
	RunE:  runLangShow,
}

var langToggleCmd = &cobra.Command{
	Use:   "toggle",
	Short: "Cycle to the next supported language",
	RunE:  runLangToggle,
}

var langSetCmd = &cobra.Command{
	Use:   "set <code>",
	Short: "Set the language preference directly",
	Args:  cobra.ExactArgs(1),
	RunE:  runLangSet,
}

func init() {
	langCmd.PersistentFlags().StringVarP(&langConfigFile, "config", "c", "", "Path to site config JSON file")
	langCmd.AddCommand(langShowCmd, langToggleCmd, langSetCmd)
	rootCmd.AddCommand(langCmd)
}

func runLangShow(_ *cobra.Command, _ []string) error {
	cfg, err := loadSiteConfig(langConfigFile, nil, false)
	if err != nil {
		return err
	}
	store, err := newStateStore(cfg)
	if err != nil {
		return err
	}

	fmt.Println(language.NewPreference(store).Current())
	return nil
}

func runLangToggle(_ *cobra.Command, _ []string) error {
	cfg, err := loadSiteConfig(langConfigFile, nil, false)
	if err != nil {
		return err
	}
	dispatcher, _, err := newDispatcher(cfg)
	if err != nil {
		return err
	}
	store, err := newStateStore(cfg)
	if err != nil {
		return err
	}

	previous, next, err := language.NewPreference(store).Toggle()
	if err != nil {
		return fmt.Errorf("failed to persist language preference: %w", err)
	}

	dispatcher.TrackLanguageToggle(previous, next)
	fmt.Printf("%s -> %s\n", previous, next)
	return nil
}

func runLangSet(_ *cobra.Command, args []string) error {
	cfg, err := loadSiteConfig(langConfigFile, nil, false)
	if err != nil {
		return err
	}
	store, err := newStateStore(cfg)
	if err != nil {
		return err
	}

	set, err := language.NewPreference(store).Set(language.Language(args[0]))
	if err != nil {
		return fmt.Errorf("failed to persist language preference: %w", err)
	}

	fmt.Println(set)
	return nil
}
