package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-site/internal/consent"
)

var consentCmd = &cobra.Command{
	Use:   "consent",
	Short: "Manage the persisted analytics consent record",
}

var consentConfigFile string

var consentGrantCmd = &cobra.Command{
	Use:   "grant",
	Short: "Grant analytics consent",
	Long:  "Writes a fresh consent record with the current policy version. Category flags merge over the defaults (ip and user-agent and performance on, demographics off).",
	RunE:  runConsentGrant,
}

var (
	grantIP           bool
	grantUserAgent    bool
	grantDemographics bool
	grantPerformance  bool
)

var consentRevokeCmd = &cobra.Command{
	Use:   "revoke",
	Short: "Revoke analytics consent",
	Long:  "Deletes the consent record. Declining is stored as the absence of a record. Safe to run when no record exists.",
	RunE:  runConsentRevoke,
}

var consentStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current consent state",
	RunE:  runConsentStatus,
}

func init() {
	defaults := consent.DefaultPermissions()
	consentGrantCmd.Flags().BoolVar(&grantIP, "ip", defaults.IP, "Allow IP collection")
	consentGrantCmd.Flags().BoolVar(&grantUserAgent, "user-agent", defaults.UserAgent, "Allow user-agent collection")
	consentGrantCmd.Flags().BoolVar(&grantDemographics, "demographics", defaults.Demographics, "Allow demographics collection")
	consentGrantCmd.Flags().BoolVar(&grantPerformance, "performance", defaults.Performance, "Allow performance collection")

	consentCmd.PersistentFlags().StringVarP(&consentConfigFile, "config", "c", "", "Path to site config JSON file")
	consentCmd.AddCommand(consentGrantCmd, consentRevokeCmd, consentStatusCmd)
	rootCmd.AddCommand(consentCmd)
}

func runConsentGrant(_ *cobra.Command, _ []string) error {
	cfg, err := loadSiteConfig(consentConfigFile, nil, false)
	if err != nil {
		return err
	}
	_, store, err := newDispatcher(cfg)
	if err != nil {
		return err
	}

	perms := consent.Permissions{
		IP:           grantIP,
		UserAgent:    grantUserAgent,
		Demographics: grantDemographics,
		Performance:  grantPerformance,
	}
	rec, err := store.Grant(&perms)
	if err != nil {
		return fmt.Errorf("failed to grant consent: %w", err)
	}

	fmt.Printf("Consent granted (policy %s, expires %s)\n",
		rec.Version,
		time.UnixMilli(rec.Timestamp).Add(consent.TTL).Format("2006-01-02"))
	return nil
}

func runConsentRevoke(_ *cobra.Command, _ []string) error {
	cfg, err := loadSiteConfig(consentConfigFile, nil, false)
	if err != nil {
		return err
	}
	_, store, err := newDispatcher(cfg)
	if err != nil {
		return err
	}

	if err := store.Revoke(); err != nil {
		return fmt.Errorf("failed to revoke consent: %w", err)
	}
	fmt.Println("Consent revoked")
	return nil
}

func runConsentStatus(_ *cobra.Command, _ []string) error {
	cfg, err := loadSiteConfig(consentConfigFile, nil, false)
	if err != nil {
		return err
	}
	_, store, err := newDispatcher(cfg)
	if err != nil {
		return err
	}

	rec := store.Current()
	if rec == nil {
		fmt.Println("No consent recorded")
		return nil
	}

	fmt.Printf("Granted:      %s\n", time.UnixMilli(rec.Timestamp).Format(time.RFC3339))
	fmt.Printf("Policy:       %s\n", rec.Version)
	fmt.Printf("Permissions:  ip=%t user-agent=%t demographics=%t performance=%t\n",
		rec.Permissions.IP, rec.Permissions.UserAgent,
		rec.Permissions.Demographics, rec.Permissions.Performance)
	return nil
}
