package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sirumat/record-service/config"
	attDTO "github.com/sirumat/record-service/internal/attendance/dto"
	attUCPkg "github.com/sirumat/record-service/internal/attendance/usecase"
	contentDTO "github.com/sirumat/record-service/internal/content/dto"
	contentUCPkg "github.com/sirumat/record-service/internal/content/usecase"
	"github.com/sirumat/record-service/internal/inventory"
	invDTO "github.com/sirumat/record-service/internal/inventory/dto"
	invUCPkg "github.com/sirumat/record-service/internal/inventory/usecase"
	"github.com/sirumat/record-service/internal/model"
	"github.com/sirumat/record-service/internal/report"
	"github.com/sirumat/record-service/internal/sheet"
	"github.com/sirumat/record-service/internal/sheet/repository"
	"github.com/sirumat/record-service/internal/ticket"
	ticketDTO "github.com/sirumat/record-service/internal/ticket/dto"
	ticketUCPkg "github.com/sirumat/record-service/internal/ticket/usecase"
	"github.com/sirumat/record-service/pkg/logger"
)

const usage = `sirumat <perintah> [flags]

Perintah:
  lapor       kirim laporan kerusakan
  tiket       daftar tiket Pending
  perbaikan   catat perbaikan (menutup tiket bila ada)
  stok        sesuaikan stok barang
  barang      tambah barang baru, atau daftar inventaris tanpa flag
  presensi    catat presensi PPNPN, atau daftar per tanggal
  kebersihan  simpan checklist kebersihan
  konten      simpan rencana konten, atau daftar tanpa caption
  dashboard   ringkasan statistik
`

func main() {
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.App.Env == "development" || cfg.App.Env == "dev" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}
	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	// One invocation is one interaction: resolve a fresh handle, run a single
	// synchronous sequence of store calls, render the outcome. Nothing is
	// cached across invocations.
	ctx := context.Background()
	interactionID := uuid.New().String()
	log := appLogger
	log.Info("interaction start",
		zap.String("interaction_id", interactionID),
		zap.String("command", os.Args[1]))

	store, err := repository.Resolve(ctx, cfg, log)
	if err != nil {
		fail(log, interactionID, err)
	}

	ticketUC := ticketUCPkg.NewTicketUseCase(store, log)
	invUC := invUCPkg.NewInventoryUseCase(store, log)
	attUC := attUCPkg.NewAttendanceUseCase(store, log)
	contentUC := contentUCPkg.NewContentUseCase(store, log)

	switch os.Args[1] {
	case "lapor":
		fs := flag.NewFlagSet("lapor", flag.ExitOnError)
		pelapor := fs.String("pelapor", "", "nama pelapor")
		lokasi := fs.String("lokasi", "", "lokasi kerusakan")
		kendala := fs.String("kendala", "", "deskripsi kendala")
		foto := fs.String("foto", "", "path bukti foto")
		fs.Parse(os.Args[2:])

		r, err := ticketUC.SubmitDamageReport(ctx, &ticketDTO.SubmitDamageReportInput{
			Reporter:    *pelapor,
			Location:    *lokasi,
			Description: *kendala,
			Evidence:    *foto,
		})
		if err != nil {
			fail(log, interactionID, err)
		}
		fmt.Printf("Laporan terkirim. Tiket: %s\n", r.TicketID)

	case "tiket":
		open, err := ticketUC.ListOpenTickets(ctx)
		if err != nil {
			fail(log, interactionID, err)
		}
		if len(open) == 0 {
			fmt.Println("Tidak ada tiket Pending.")
			return
		}
		for _, t := range open {
			fmt.Printf("%s  %s  %s  %s\n", t.TicketID, t.Timestamp, t.Location, t.Description)
		}

	case "perbaikan":
		fs := flag.NewFlagSet("perbaikan", flag.ExitOnError)
		teknisi := fs.String("teknisi", "", "nama teknisi")
		lokasi := fs.String("lokasi", "", "lokasi perbaikan")
		tindakan := fs.String("tindakan", "", "tindakan perbaikan")
		foto := fs.String("foto", "", "path bukti foto")
		tiketID := fs.String("tiket", "", "tiket yang ditutup (kosong = Non-Tiket)")
		fs.Parse(os.Args[2:])

		res, err := ticketUC.FileRepair(ctx, &ticketDTO.FileRepairInput{
			Technician: *teknisi,
			Location:   *lokasi,
			Action:     *tindakan,
			Evidence:   *foto,
			TicketID:   *tiketID,
		})
		if errors.Is(err, ticket.ErrTicketNotClosed) {
			// The repair is in the store; only the status update failed. No
			// rollback, the operator has to fix the ticket by hand.
			fmt.Fprintf(os.Stderr, "PERHATIAN: perbaikan tersimpan tetapi tiket %s masih Pending: %v\n", res.Repair.TicketID, err)
			os.Exit(1)
		}
		if err != nil {
			fail(log, interactionID, err)
		}
		if res.TicketClosed {
			fmt.Printf("Perbaikan tersimpan, tiket %s Selesai.\n", res.Repair.TicketID)
		} else {
			fmt.Println("Perbaikan tersimpan (Non-Tiket).")
		}

	case "stok":
		fs := flag.NewFlagSet("stok", flag.ExitOnError)
		barang := fs.String("barang", "", "nama barang")
		delta := fs.Int("delta", 0, "perubahan stok (negatif = pemakaian)")
		fs.Parse(os.Args[2:])

		newStock, err := invUC.Adjust(ctx, &invDTO.AdjustStockInput{Name: *barang, Delta: *delta})
		if errors.Is(err, inventory.ErrTimestampStale) {
			fmt.Fprintf(os.Stderr, "PERHATIAN: stok %q sekarang %d tetapi kolom Terakhir Update gagal diperbarui: %v\n", *barang, newStock, err)
			os.Exit(1)
		}
		if err != nil {
			fail(log, interactionID, err)
		}
		fmt.Printf("Stok %q sekarang %d.\n", *barang, newStock)

	case "barang":
		fs := flag.NewFlagSet("barang", flag.ExitOnError)
		nama := fs.String("nama", "", "nama barang baru")
		kategori := fs.String("kategori", "", "kategori")
		stok := fs.Int("stok", 0, "stok awal")
		satuan := fs.String("satuan", "", "satuan")
		min := fs.Int("min", 0, "stok minimum")
		fs.Parse(os.Args[2:])

		if *nama == "" {
			items, err := invUC.List(ctx)
			if err != nil {
				fail(log, interactionID, err)
			}
			for _, it := range items {
				marker := ""
				if it.LowStock() {
					marker = "  [STOK MENIPIS]"
				}
				fmt.Printf("%-24s %4d %-8s min %d%s\n", it.Name, it.Stock, it.Unit, it.MinStock, marker)
			}
			return
		}

		item, err := invUC.AddItem(ctx, &invDTO.AddItemInput{
			Name:     *nama,
			Category: *kategori,
			Stock:    *stok,
			Unit:     *satuan,
			MinStock: *min,
		})
		if err != nil {
			fail(log, interactionID, err)
		}
		fmt.Printf("Barang %q ditambahkan dengan stok %d.\n", item.Name, item.Stock)

	case "presensi":
		fs := flag.NewFlagSet("presensi", flag.ExitOnError)
		pegawai := fs.String("pegawai", "", "nama pegawai")
		status := fs.String("status", model.AttendancePresent, "Hadir/Izin/Sakit")
		keterangan := fs.String("keterangan", "", "keterangan")
		foto := fs.String("foto", "", "path bukti foto (wajib)")
		tanggal := fs.String("tanggal", "", "daftar presensi pada tanggal YYYY-MM-DD")
		fs.Parse(os.Args[2:])

		if *tanggal != "" {
			recs, err := attUC.ListByDate(ctx, *tanggal)
			if err != nil {
				fail(log, interactionID, err)
			}
			for _, r := range recs {
				fmt.Printf("%s  %-20s %-6s %s\n", r.Timestamp, r.Employee, r.Status, r.Note)
			}
			return
		}

		rec, err := attUC.CheckIn(ctx, &attDTO.CheckInInput{
			Employee: *pegawai,
			Status:   *status,
			Note:     *keterangan,
			Evidence: *foto,
		})
		if err != nil {
			fail(log, interactionID, err)
		}
		fmt.Printf("Presensi %s (%s) tercatat.\n", rec.Employee, rec.Status)

	case "kebersihan":
		fs := flag.NewFlagSet("kebersihan", flag.ExitOnError)
		petugas := fs.String("petugas", "", "nama petugas")
		area := fs.String("area", "", "area")
		kondisi := fs.String("kondisi", model.ConditionClean, "Bersih/Kotor")
		foto := fs.String("foto", "", "path bukti foto")
		fs.Parse(os.Args[2:])

		entry, err := attUC.LogCleaning(ctx, &attDTO.CleaningInput{
			Officer:   *petugas,
			Area:      *area,
			Condition: *kondisi,
			Evidence:  *foto,
		})
		if err != nil {
			fail(log, interactionID, err)
		}
		fmt.Printf("Checklist %s (%s) tersimpan.\n", entry.Area, entry.Condition)

	case "konten":
		fs := flag.NewFlagSet("konten", flag.ExitOnError)
		tanggal := fs.String("tanggal", time.Now().Format("2006-01-02"), "tanggal posting")
		caption := fs.String("caption", "", "rencana caption")
		platform := fs.String("platform", "", "platform, dipisah koma")
		status := fs.String("status", model.ContentStatusIdea, "Ide/Draft/Siap Post/Sudah Post")
		fs.Parse(os.Args[2:])

		if *caption == "" {
			plans, err := contentUC.ListPlans(ctx)
			if err != nil {
				fail(log, interactionID, err)
			}
			for _, p := range plans {
				fmt.Printf("%s  %-10s %-24s %s\n", p.Date, p.Status, p.Platform, p.Caption)
			}
			return
		}

		plan, err := contentUC.AddPlan(ctx, &contentDTO.AddPlanInput{
			Date:      *tanggal,
			Caption:   *caption,
			Platforms: splitPlatforms(*platform),
			Status:    *status,
		})
		if err != nil {
			fail(log, interactionID, err)
		}
		fmt.Printf("Rencana konten %s tersimpan (%s).\n", plan.Date, plan.Status)

	case "dashboard":
		runDashboard(ctx, store, log, interactionID)

	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
}

func runDashboard(ctx context.Context, store sheet.Store, log logger.ZapLogger, interactionID string) {
	reportRows, err := store.LoadAll(ctx, sheet.DamageReports.Sheet)
	if err != nil {
		fail(log, interactionID, err)
	}
	reports, _ := sheet.DecodeDamageReports(reportRows)

	cleaningRows, err := store.LoadAll(ctx, sheet.Cleaning.Sheet)
	if err != nil {
		fail(log, interactionID, err)
	}
	cleaning, _ := sheet.DecodeCleaningChecklists(cleaningRows)

	planRows, err := store.LoadAll(ctx, sheet.ContentPlans.Sheet)
	if err != nil {
		fail(log, interactionID, err)
	}
	plans, _ := sheet.DecodeContentPlans(planRows)

	itemRows, err := store.LoadAll(ctx, sheet.Inventory.Sheet)
	if err != nil {
		fail(log, interactionID, err)
	}
	items, _ := sheet.DecodeInventoryItems(itemRows)

	fmt.Printf("Total Laporan Kerusakan : %d\n", len(reports))
	fmt.Printf("Total Checklist         : %d\n", len(cleaning))
	fmt.Printf("Rencana Konten 'Ide'    : %d\n", report.ContentByStatus(plans)[model.ContentStatusIdea])

	fmt.Println("\nKerusakan per Lokasi:")
	for lokasi, n := range report.DefectsByLocation(reports) {
		fmt.Printf("  %-20s %d\n", lokasi, n)
	}

	low := report.LowStockItems(items)
	if len(low) > 0 {
		fmt.Println("\nStok Menipis:")
		for _, it := range low {
			fmt.Printf("  %-24s %d/%d %s\n", it.Name, it.Stock, it.MinStock, it.Unit)
		}
	}
}

func splitPlatforms(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// fail renders the error and aborts the interaction. Errors never leak into a
// later invocation; there is no state to corrupt.
func fail(log logger.ZapLogger, interactionID string, err error) {
	log.Error("interaction failed", zap.String("interaction_id", interactionID), zap.Error(err))
	fmt.Fprintln(os.Stderr, "Gagal:", err)
	os.Exit(1)
}
