// Command simulate menjalankan engine skor akreditasi secara offline dari file YAML.
//
//	go run ./cmd/simulate -scheme internals/seeds/lams/data/data_lam_infokom.yaml -scores nilai.yaml
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/bytedance/sonic"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/olekukonko/tablewriter"

	"akreditasi_backend/internals/features/accreditation/scoring"
	"akreditasi_backend/internals/seeds/lams"
)

func main() {
	schemePath := flag.String("scheme", "", "file YAML skema LAM (format seed)")
	scoresPath := flag.String("scores", "", "file YAML nilai (scores / records)")
	asJSON := flag.Bool("json", false, "cetak hasil sebagai JSON")
	flag.Parse()

	if *schemePath == "" || *scoresPath == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(os.Stdout, *schemePath, *scoresPath, *asJSON); err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
}

func run(w io.Writer, schemePath, scoresPath string, asJSON bool) error {
	seed, err := lams.ReadLamSeed(schemePath)
	if err != nil {
		return err
	}
	input, err := readScoresFile(scoresPath)
	if err != nil {
		return err
	}
	scheme := seed.ToScheme()
	scores, err := buildScores(seed, scheme, input)
	if err != nil {
		return err
	}

	res := scoring.Simulate(scheme, scores)
	if asJSON {
		out, err := sonic.ConfigStd.MarshalIndent(res.Document(), "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(out))
		return err
	}
	render(w, scheme, scores, res)
	return nil
}

func render(w io.Writer, scheme scoring.Scheme, scores map[uuid.UUID]float64, res scoring.Result) {
	color.New(color.FgCyan).Fprintf(w, "\n=== Simulasi Akreditasi %s ===\n", scheme.Code)
	if scheme.Name != "" {
		fmt.Fprintln(w, scheme.Name)
	}

	if rep := scoring.CheckWeights(scheme); !rep.Reconciled {
		color.New(color.FgRed).Fprintf(w, "Peringatan: total bobot standar %.2f ≠ %.2f\n", rep.ActualTotal, rep.ExpectedTotal)
	}
	missing := 0
	scheme.EachIndicator(func(_ scoring.Standard, ind scoring.Indicator) {
		if _, ok := scores[ind.ID]; !ok {
			missing++
		}
	})
	if missing > 0 {
		color.New(color.FgYellow).Fprintf(w, "%d indikator belum bernilai (dihitung 0)\n", missing)
	}

	color.New(color.FgYellow).Fprintln(w, "\nSkor per Standar")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Kode", "Standar", "Skor", "Bobot", "Skor x Bobot"})
	for _, s := range res.StandardScores {
		table.Append([]string{s.Code, s.Name, fmt.Sprintf("%.2f", s.Score), fmt.Sprintf("%.2f", s.Weight), fmt.Sprintf("%.2f", s.WeightedScore)})
	}
	table.SetFooter([]string{"", "", "", "Total", fmt.Sprintf("%.2f", res.TotalScore)})
	table.Render()

	levelColor := color.New(color.FgGreen, color.Bold)
	if res.PredictedLevel == scheme.FallbackLevel || res.PredictedLevel == scoring.NotAccredited {
		levelColor = color.New(color.FgRed, color.Bold)
	}
	fmt.Fprint(w, "Prediksi peringkat: ")
	levelColor.Fprintln(w, res.PredictedLevel)

	levels := scoring.NewLevelTable(scheme.Levels, scheme.FallbackLevel).Levels()
	sort.SliceStable(levels, func(i, j int) bool { return levels[i].Threshold < levels[j].Threshold })
	for _, l := range levels {
		if l.Threshold > res.TotalScore {
			fmt.Fprintf(w, "Butuh +%.2f poin untuk %s\n", l.Threshold-res.TotalScore, l.Name)
			break
		}
	}

	color.New(color.FgYellow).Fprintln(w, "\nAnalisis Gap")
	if len(res.GapAnalysis) == 0 {
		fmt.Fprintln(w, "Tidak ada gap signifikan")
		return
	}
	gaps := tablewriter.NewWriter(w)
	gaps.SetHeader([]string{"Kode", "Standar", "Skor", "Maks", "Gap", "Prioritas"})
	for _, g := range res.GapAnalysis {
		gaps.Append([]string{g.Code, g.Name, fmt.Sprintf("%.2f", g.CurrentScore), fmt.Sprintf("%.2f", g.MaxScore), fmt.Sprintf("%.2f", g.Gap), string(g.Priority)})
	}
	gaps.Render()
}
