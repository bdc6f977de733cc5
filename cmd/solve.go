package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/rayriffy/azx-service-solver/combo"
	"github.com/rayriffy/azx-service-solver/grid"
	"github.com/rayriffy/azx-service-solver/internal/config"
	"github.com/rayriffy/azx-service-solver/solver"
)

var (
	solveConfigPath string
	solveStrategy   string
	solveBeamWidth  int
	solveDepth      int
)

// Report is the CLI's output document: a unique run tag, the strategy that
// ran, and the solution.
type Report struct {
	RunID    string        `json:"runId"`
	Strategy string        `json:"strategy"`
	Score    int           `json:"score"`
	Moves    int           `json:"moves"`
	Steps    []solver.Step `json:"steps"`
}

var solveCmd = &cobra.Command{
	Use:   "solve [grid.json]",
	Short: "Solve a puzzle grid and print the move sequence as JSON",
	Long: `solve reads a JSON array-of-arrays grid from the given file (or stdin
when no file is named), runs the solver, and prints a JSON report with one
entry per committed move: the cells cleared, the sum achieved, and the grid
state after the move.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().StringVar(&solveConfigPath, "config", "", "Path to a yaml tuning file")
	solveCmd.Flags().StringVar(&solveStrategy, "strategy", "auto", "Strategy: auto, beam, or greedy")
	solveCmd.Flags().IntVar(&solveBeamWidth, "beam-width", 0, "Beam width override (beam strategy only)")
	solveCmd.Flags().IntVar(&solveDepth, "depth", 0, "Lookahead depth override (greedy strategy only)")
	rootCmd.AddCommand(solveCmd)
}

// runSolve loads the board and tuning, resolves the strategy, runs the
// solver, and writes the JSON report.
func runSolve(cmd *cobra.Command, args []string) error {
	// 1. Read the grid document.
	var (
		data []byte
		err  error
	)
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read grid: %w", err)
		}
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read grid from stdin: %w", err)
		}
	}

	var board [][]uint8
	if err = json.Unmarshal(data, &board); err != nil {
		return fmt.Errorf("failed to parse grid: %w", err)
	}

	// 2. Resolve tuning options.
	opts := solver.DefaultOptions()
	if solveConfigPath != "" {
		cfg, cfgErr := config.Load(solveConfigPath)
		if cfgErr != nil {
			return cfgErr
		}
		opts = cfg.ToSolverOptions()
	}
	if err = opts.Validate(); err != nil {
		return err
	}

	// 3. Build and bound-check the board.
	g, err := grid.New(board)
	if err != nil {
		return err
	}
	if g.Rows() > combo.MaxAxis || g.Cols() > combo.MaxAxis {
		return solver.ErrBoardTooLarge
	}

	// 4. Resolve the plan and run.
	plan, err := resolvePlan(g, opts)
	if err != nil {
		return err
	}

	var steps []solver.Step
	if plan.Strategy == solver.StrategyGreedy {
		steps = solver.GreedyLookahead(g, plan.Depth, opts)
	} else {
		steps = solver.BeamSearch(g, plan.Width, opts)
	}

	// 5. Emit the report.
	report := Report{
		RunID:    uuid.NewString(),
		Strategy: plan.Strategy.String(),
		Score:    totalScore(steps),
		Moves:    len(steps),
		Steps:    steps,
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")

	return enc.Encode(report)
}

// resolvePlan maps the --strategy flag (plus overrides) onto a solver plan.
func resolvePlan(g *grid.Grid, opts solver.Options) (solver.Plan, error) {
	switch solveStrategy {
	case "auto":
		return solver.PlanFor(g.Remaining(), opts), nil
	case "beam":
		width := solveBeamWidth
		if width == 0 {
			// Density routing would pick greedy here; forcing beam uses the
			// narrow width.
			if p := solver.PlanFor(g.Remaining(), opts); p.Strategy == solver.StrategyBeam {
				width = p.Width
			} else {
				width = opts.MediumBeamWidth
			}
		}
		if width < 1 {
			return solver.Plan{}, solver.ErrBadWidth
		}

		return solver.Plan{Strategy: solver.StrategyBeam, Width: width}, nil
	case "greedy":
		depth := solveDepth
		if depth == 0 {
			depth = opts.LookaheadDepth
		}
		if depth < 1 {
			return solver.Plan{}, solver.ErrBadDepth
		}

		return solver.Plan{Strategy: solver.StrategyGreedy, Depth: depth}, nil
	default:
		return solver.Plan{}, fmt.Errorf("unknown strategy %q (want auto, beam, or greedy)", solveStrategy)
	}
}

// totalScore sums the triangular score of every committed step.
func totalScore(steps []solver.Step) int {
	total := 0
	for _, s := range steps {
		total += solver.MoveScore(len(s.Cells))
	}

	return total
}
