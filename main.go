package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"career-pivot/internal/config"
	"career-pivot/internal/engine"
	"career-pivot/internal/handler"
	"career-pivot/internal/logging"
	"career-pivot/internal/model"
	"career-pivot/internal/rules"
)

var (
	cfg    *config.Config
	logger *zap.Logger

	rulesFile string
	plan      planFlags
)

var rootCmd = &cobra.Command{
	Use:   "career-pivot",
	Short: "Plan the road from sonographer to licensed therapist",
	Long: `career-pivot projects a career-change timeline: interim work, a travel
break, a graduate program starting each September, supervised residency,
and licensure, with the age reached at each milestone.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		logger, err = logging.New(cfg.LogLevel, cfg.IsDev())
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the timeline and comparison API over HTTP",
	RunE:  runServe,
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Print the timeline for one scenario as JSON",
	Example: `  career-pivot plan --birthdate 1998-07-14 --finish 2026-12-18 \
    --jurisdiction VA --license LPC --travel-months 3 --countries JP:Japan,PE:Peru`,
	RunE: runPlan,
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect the licensing rule table",
}

var rulesCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that every jurisdiction and license type has requirements",
	RunE:  runRulesCheck,
}

type planFlags struct {
	jurisdiction string
	license      string
	birthdate    string
	finish       string
	travelMonths int
	countries    []string
	workMonths   int
	program      int
	hours        float64
	ratio        float64
	remote       bool
}

func init() {
	def := model.DefaultScenario()

	f := planCmd.Flags()
	f.StringVar(&plan.jurisdiction, "jurisdiction", string(def.Jurisdiction), "jurisdiction (CA, VA, OK, SC)")
	f.StringVar(&plan.license, "license", string(def.License), "license type (LMFT, LPC, LPCC, LCSW)")
	f.StringVar(&plan.birthdate, "birthdate", def.Birthdate.String(), "birthdate, YYYY-MM-DD")
	f.StringVar(&plan.finish, "finish", def.FinishPriorTraining.String(), "date sonography training ends, YYYY-MM-DD")
	f.IntVar(&plan.travelMonths, "travel-months", def.TravelMonths, "length of the travel break in months")
	f.StringSliceVar(&plan.countries, "countries", nil, "travel destinations as CODE or CODE:Name")
	f.IntVar(&plan.workMonths, "work-months", def.WorkMonths, "months working as a sonographer first; 0 skips the phase")
	f.IntVar(&plan.program, "program-length", def.ProgramLength, "graduate program length in months")
	f.Float64Var(&plan.hours, "hours", def.HoursPerWeek, "supervised hours per week during residency")
	f.Float64Var(&plan.ratio, "direct-ratio", def.DirectClientRatio, "share of residency hours spent with clients")
	f.BoolVar(&plan.remote, "remote", def.AllowRemoteCoursework, "allow remote coursework")

	rulesCheckCmd.Flags().StringVar(&rulesFile, "file", "", "rule table YAML to check instead of the configured one")

	rulesCmd.AddCommand(rulesCheckCmd)
	rootCmd.AddCommand(serveCmd, planCmd, rulesCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadRules(path string) (*rules.Table, error) {
	table, err := rules.Load(path)
	if err != nil {
		return nil, err
	}
	if err := table.Validate(model.Jurisdictions, model.LicenseTypes); err != nil {
		logger.Warn("rule table is incomplete, missing pairs use the fallback residency", zap.Error(err))
	}
	return table, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	table, err := loadRules(cfg.RulesFile)
	if err != nil {
		return err
	}
	eng := engine.New(table, cfg.MaxVariants, logger)

	server := &fasthttp.Server{
		Handler:      handler.New(eng, logger).Handle,
		Name:         "career-pivot",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("career planner starting", zap.String("addr", cfg.Addr()))
		if err := server.ListenAndServe(cfg.Addr()); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.ShutdownWithContext(shutdownCtx)
	})
	if cfg.RulesFile != "" {
		g.Go(func() error {
			return rules.Watch(gctx, cfg.RulesFile,
				func(t *rules.Table) {
					if err := t.Validate(model.Jurisdictions, model.LicenseTypes); err != nil {
						logger.Warn("reloaded rule table is incomplete", zap.Error(err))
					}
					eng.SetRules(t)
				},
				func(err error) {
					logger.Error("rule table reload failed, keeping previous table", zap.Error(err))
				})
		})
	}

	return g.Wait()
}

func runPlan(cmd *cobra.Command, args []string) error {
	in, err := plan.scenario()
	if err != nil {
		return err
	}
	if err := handler.Validate(&in); err != nil {
		return err
	}

	table, err := loadRules(cfg.RulesFile)
	if err != nil {
		return err
	}
	result := engine.New(table, cfg.MaxVariants, logger).Generate(in)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode timeline: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}

func (p planFlags) scenario() (model.ScenarioInput, error) {
	birth, err := model.ParseDate(p.birthdate)
	if err != nil {
		return model.ScenarioInput{}, fmt.Errorf("--birthdate: %w", err)
	}
	finish, err := model.ParseDate(p.finish)
	if err != nil {
		return model.ScenarioInput{}, fmt.Errorf("--finish: %w", err)
	}

	countries := make([]model.Country, 0, len(p.countries))
	for _, c := range p.countries {
		code, name, _ := strings.Cut(c, ":")
		countries = append(countries, model.Country{Code: strings.ToUpper(strings.TrimSpace(code)), Name: strings.TrimSpace(name)})
	}

	return model.ScenarioInput{
		Jurisdiction:          model.Jurisdiction(strings.ToUpper(p.jurisdiction)),
		License:               model.LicenseType(strings.ToUpper(p.license)),
		Birthdate:             birth,
		FinishPriorTraining:   finish,
		TravelMonths:          p.travelMonths,
		TravelCountries:       countries,
		WorkAsInterim:         p.workMonths > 0,
		WorkMonths:            p.workMonths,
		ProgramLength:         p.program,
		HoursPerWeek:          p.hours,
		DirectClientRatio:     p.ratio,
		AllowRemoteCoursework: p.remote,
	}, nil
}

func runRulesCheck(cmd *cobra.Command, args []string) error {
	path := rulesFile
	if path == "" {
		path = cfg.RulesFile
	}
	table, err := rules.Load(path)
	if err != nil {
		return err
	}
	if err := table.Validate(model.Jurisdictions, model.LicenseTypes); err != nil {
		return fmt.Errorf("rule table check failed:\n%w", err)
	}
	source := path
	if source == "" {
		source = "embedded"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "rule table OK (%s): %d jurisdictions, %d license types\n",
		source, len(model.Jurisdictions), len(model.LicenseTypes))
	return nil
}
