// Command simulate ejecuta una corrida desde la terminal, imprime el resumen y escribe
// la exportación.
//
//	simulate --scenario newsvendor --format csv --out resultados.csv -q 70000
//	simulate --scenario inventory --format pdf --out inventario.pdf --seed 7
//	JWT_SECRET=... simulate --issue-token tablero
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/Simulacion-api/internal/application/dto"
	appsim "github.com/jhoicas/Simulacion-api/internal/application/simulation"
	"github.com/jhoicas/Simulacion-api/internal/domain"
	infracsv "github.com/jhoicas/Simulacion-api/internal/infrastructure/csv"
	infrapdf "github.com/jhoicas/Simulacion-api/internal/infrastructure/pdf"
	infraxlsx "github.com/jhoicas/Simulacion-api/internal/infrastructure/xlsx"
	"github.com/jhoicas/Simulacion-api/pkg/config"
	"github.com/jhoicas/Simulacion-api/pkg/jwt"
	"github.com/jhoicas/Simulacion-api/pkg/logger"
)

type options struct {
	scenario string
	format   string
	out      string
	seed     uint64
	hasSeed  bool
	samples  int
	quantity float64
	verbose  bool
	token    string // cliente para el que se emite un JWT; no simula
}

func main() {
	fs := flag.NewFlagSet("simulate", flag.ExitOnError)
	var opts options
	fs.StringVarP(&opts.scenario, "scenario", "s", "newsvendor", "escenario: newsvendor | inventory")
	fs.StringVarP(&opts.format, "format", "f", "csv", "formato de exportación: csv | xlsx | pdf")
	fs.StringVarP(&opts.out, "out", "o", "", "archivo de salida (por defecto el nombre sugerido)")
	fs.Uint64Var(&opts.seed, "seed", 0, "semilla del generador")
	fs.IntVarP(&opts.samples, "samples", "n", 0, "escenarios de demanda (newsvendor)")
	fs.Float64VarP(&opts.quantity, "quantity", "q", 0, "cantidad a producir Q (newsvendor)")
	fs.BoolVarP(&opts.verbose, "verbose", "v", false, "log detallado de la corrida")
	fs.StringVar(&opts.token, "issue-token", "", "emite un token Bearer para el cliente indicado (requiere JWT_SECRET)")
	_ = fs.Parse(os.Args[1:])
	opts.hasSeed = fs.Changed("seed")

	if err := run(context.Background(), opts, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrUnsupportedFormat) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, opts options, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("cargar configuración: %w", err)
	}

	if opts.token != "" {
		tok, err := jwt.Generate(cfg.JWT.Secret, opts.token, cfg.JWT.Issuer, cfg.JWT.Expiration)
		if err != nil {
			return fmt.Errorf("emitir token: %w", err)
		}
		fmt.Fprintln(stdout, tok)
		return nil
	}

	log := logger.Nop()
	if opts.verbose {
		log = logger.New(logger.Config{Env: "development", Level: "debug", Out: os.Stderr})
	}

	exporters := []appsim.Exporter{
		infracsv.NewExporter(),
		infraxlsx.NewExporter(),
		infrapdf.NewReportGenerator(),
	}
	p := message.NewPrinter(language.Spanish)

	var file *appsim.ExportFile
	switch strings.ToLower(opts.scenario) {
	case "newsvendor":
		uc := appsim.NewNewsvendorUseCase(appsim.NewsvendorSettingsFromConfig(cfg.Newsvendor), log, exporters...)
		in := dto.NewsvendorRequest{}
		if opts.samples != 0 {
			in.SampleCount = &opts.samples
		}
		if opts.quantity != 0 {
			in.ProductionQuantity = &opts.quantity
		}
		if opts.hasSeed {
			in.Seed = &opts.seed
		}
		res, err := uc.Run(ctx, in)
		if err != nil {
			return err
		}
		printNewsvendor(stdout, p, res)

		// Misma semilla: el archivo corresponde a la corrida impresa.
		in.Seed = &res.Seed
		if file, err = uc.Export(ctx, in, opts.format); err != nil {
			return err
		}

	case "inventory":
		uc := appsim.NewInventoryUseCase(appsim.InventorySettingsFromConfig(cfg.Inventory), log, exporters...)
		in := dto.InventoryRequest{}
		if opts.hasSeed {
			in.Seed = &opts.seed
		}
		res, err := uc.Run(ctx, in)
		if err != nil {
			return err
		}
		printInventory(stdout, p, res)

		in.Seed = &res.Seed
		if file, err = uc.Export(ctx, in, opts.format); err != nil {
			return err
		}

	default:
		return fmt.Errorf("%w: escenario %q (newsvendor | inventory)", domain.ErrInvalidInput, opts.scenario)
	}

	path := opts.out
	if path == "" {
		path = file.Filename
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("crear directorio de salida: %w", err)
		}
	}
	if err := os.WriteFile(path, file.Data, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", path, err)
	}
	fmt.Fprintf(stdout, "\nArchivo generado: %s (%s)\n", path, file.ContentType)
	return nil
}

func printNewsvendor(w io.Writer, p *message.Printer, res *dto.NewsvendorRunResponse) {
	s := res.Summary
	fmt.Fprintf(w, "Simulación de producción Q=%s (N=%d, semilla %d)\n",
		p.Sprintf("%.0f", res.Config.ProductionQuantity), res.Config.SampleCount, res.Seed)
	fmt.Fprintf(w, "  Utilidad promedio:       $%s\n", p.Sprintf("%.2f", s.MeanProfit.InexactFloat64()))
	fmt.Fprintf(w, "  Desviación estándar:     $%s\n", p.Sprintf("%.2f", s.StdDevProfit.InexactFloat64()))
	fmt.Fprintf(w, "  %% Quiebre de inventario: %s%%\n", p.Sprintf("%.2f", s.StockoutProbability*100))
	fmt.Fprintf(w, "  Utilidad P5 / P95:       $%s / $%s\n",
		p.Sprintf("%.2f", s.ProfitPercentiles.P5.InexactFloat64()),
		p.Sprintf("%.2f", s.ProfitPercentiles.P95.InexactFloat64()))
}

func printInventory(w io.Writer, p *message.Printer, res *dto.InventoryRunResponse) {
	s := res.Summary
	fmt.Fprintf(w, "Simulación de inventario (%d días, revisión cada %d, semilla %d)\n",
		res.Config.HorizonDays, res.Config.ReviewPeriodDays, res.Seed)
	fmt.Fprintf(w, "  Costo promedio diario:   $%s\n", p.Sprintf("%.2f", s.AverageDailyCost.InexactFloat64()))
	fmt.Fprintf(w, "  Costo total:             $%s\n", p.Sprintf("%.2f", s.TotalCost.InexactFloat64()))
	fmt.Fprintf(w, "  Días con faltante:       %d\n", s.StockoutDays)
	fmt.Fprintf(w, "  Órdenes emitidas:        %d\n", s.OrdersPlaced)
}
