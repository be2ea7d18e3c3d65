package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/annel0/voxelcore/internal/config"
	"github.com/annel0/voxelcore/internal/logging"
	"github.com/annel0/voxelcore/internal/world"
	"github.com/annel0/voxelcore/internal/world/block"
	"github.com/annel0/voxelcore/internal/world/block/implementations"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to YAML config (default: $VOXEL_CONFIG)")
		name        = flag.String("name", "", "Show only the block family with this unique name")
		metricsAddr = flag.String("metrics", "", "Serve Prometheus metrics on this address and wait for a signal")
		demo        = flag.Bool("demo", false, "Run the reference blocks through the dispatcher on an in-memory world")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("❌ Ошибка загрузки конфигурации: %v", err)
	}

	logging.SetLogDir(cfg.Logging.Dir)
	if err := logging.InitDefaultLogger("cli"); err != nil {
		log.Fatalf("❌ Ошибка инициализации логирования: %v", err)
	}
	defer logging.CloseDefaultLogger()

	logging.Info("🧱 Инициализация каталога блоков (воздух %d:%d, заглушка %d:%d)",
		cfg.Blocks.AirID, cfg.Blocks.AirMeta, cfg.Blocks.UnknownID, cfg.Blocks.UnknownMeta)

	if level, err := logging.ParseLevel(cfg.Logging.GetLevel()); err != nil {
		logging.Warn("Неверный уровень логирования: %v", err)
	} else {
		logging.GetLoggerManager().SetLevels(level, logging.DEBUG)
	}

	reg, err := implementations.NewDefaultRegistry(world.RegistryConfig(cfg.Blocks))
	if err != nil {
		logging.Error("Ошибка инициализации регистра блоков: %v", err)
		os.Exit(1)
	}

	if err := printCatalog(os.Stdout, reg, *name); err != nil {
		logging.Error("%v", err)
		os.Exit(1)
	}

	serve := *metricsAddr != "" || cfg.Metrics.Enabled

	// Метрики пишет диспетчер демонстрационного прогона; при -metrics он выполняется всегда
	promReg := prometheus.NewRegistry()
	metrics := world.NewMetrics(promReg)
	if *demo || serve {
		if err := runDemo(os.Stdout, reg, cfg.Dispatch, metrics); err != nil {
			logging.Error("%v", err)
			os.Exit(1)
		}
	}

	if !serve {
		return
	}
	addr := *metricsAddr
	if addr == "" {
		addr = cfg.Metrics.GetAddr()
	}

	go func() {
		logging.Info("📈 Prometheus /metrics доступен по адресу %s", addr)
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(promReg, promhttp.HandlerOpts{}))
		if err := http.ListenAndServe(addr, mux); err != nil {
			logging.Error("Ошибка Prometheus HTTP сервера: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	logging.Info("Завершение работы")
}

// printCatalog печатает дескрипторы регистра или одно семейство
func printCatalog(out io.Writer, reg *block.Registry, name string) error {
	types := reg.Types()
	if name != "" {
		family, ok := reg.ByName(name)
		if !ok {
			return fmt.Errorf("блок %q не зарегистрирован", name)
		}
		filtered := types[:0:0]
		for _, t := range types {
			if t.ID() == family.ID() {
				filtered = append(filtered, t)
			}
		}
		types = filtered
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID:META\tNAME\tKEY\tSOLID\tTRANSPARENT\tHARDNESS\tBLAST\tBOX")
	for _, t := range types {
		box := "-"
		if b, ok := t.BBox(); ok {
			box = fmt.Sprintf("%v-%v", b.Min(), b.Max())
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%t\t%t\t%.2f\t%.2f\t%s\n",
			t.State(), t.UniqueName(), t.TranslationKey(), t.Solid(), t.Transparent(),
			t.Hardness(), t.BlastResistance(), box)
	}
	return w.Flush()
}
