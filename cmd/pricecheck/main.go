// pricecheck prices a purchase from the command line.
//
// Usage:
//
//	pricecheck quote --price 3.49 --quantity 1 --unit lb
//	pricecheck compare kg "fl oz"
//	pricecheck units
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v2"

	"compatron/internal/units"
)

var version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "pricecheck",
		Usage:   "Unit and normalized prices for grocery purchases",
		Version: version,
		Commands: []*cli.Command{
			quoteCommand(),
			compareCommand(),
			unitsCommand(),
		},
	}
}

// =============================================================================
// QUOTE COMMAND
// =============================================================================

type quote struct {
	Price               float64         `json:"price"`
	Quantity            float64         `json:"quantity"`
	Unit                units.Unit      `json:"unit"`
	Dimension           units.Dimension `json:"dimension"`
	UnitPrice           float64         `json:"unit_price"`
	NormalizedUnitPrice float64         `json:"normalized_unit_price"`
	BaseUnit            units.Unit      `json:"base_unit"`
	Display             string          `json:"display"`
}

func quoteCommand() *cli.Command {
	return &cli.Command{
		Name:  "quote",
		Usage: "Price a purchase per unit and per base unit",
		Flags: []cli.Flag{
			&cli.Float64Flag{
				Name:     "price",
				Aliases:  []string{"p"},
				Usage:    "Total price paid",
				Required: true,
			},
			&cli.Float64Flag{
				Name:     "quantity",
				Aliases:  []string{"q"},
				Usage:    "Quantity bought, in --unit",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "unit",
				Aliases: []string{"u"},
				Value:   string(units.Count),
				Usage:   "Unit of the quantity (see `pricecheck units`)",
			},
			&cli.IntFlag{
				Name:    "precision",
				Value:   int(units.DefaultPrecision),
				Usage:   "Decimals kept for the unit price",
				EnvVars: []string{"UNIT_PRICE_PRECISION"},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "text",
				Usage:   "Output format (text, json)",
			},
		},
		Action: runQuote,
	}
}

func runQuote(c *cli.Context) error {
	price := c.Float64("price")
	quantity := c.Float64("quantity")
	if price <= 0 || quantity <= 0 {
		return fmt.Errorf("quantity and price must be positive numbers")
	}
	u := units.Unit(c.String("unit"))
	if !units.IsKnown(u) {
		fmt.Fprintf(c.App.ErrWriter, "warning: unknown unit %q, treating it as a count\n", u)
	}

	q := quote{
		Price:               price,
		Quantity:            quantity,
		Unit:                u,
		Dimension:           units.DimensionOf(u),
		UnitPrice:           units.RoundedUnitPrice(price, quantity, int32(c.Int("precision"))),
		NormalizedUnitPrice: units.NormalizedUnitPrice(price, quantity, u),
		BaseUnit:            units.BaseUnitOf(u),
		Display:             units.FormatComparison(price, quantity, u),
	}

	switch c.String("format") {
	case "json":
		enc := json.NewEncoder(c.App.Writer)
		enc.SetIndent("", "  ")
		return enc.Encode(q)
	case "text":
		w := c.App.Writer
		fmt.Fprintf(w, "Unit price:       %v per %s\n", q.UnitPrice, q.Unit)
		fmt.Fprintf(w, "Normalized price: %v per %s\n", q.NormalizedUnitPrice, q.BaseUnit)
		fmt.Fprintf(w, "Display:          %s\n", q.Display)
		return nil
	default:
		return fmt.Errorf("unknown format %q", c.String("format"))
	}
}

// =============================================================================
// COMPARE COMMAND
// =============================================================================

func compareCommand() *cli.Command {
	return &cli.Command{
		Name:      "compare",
		Usage:     "Tell whether prices in two units can be ranked against each other",
		ArgsUsage: "UNIT_A UNIT_B",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return fmt.Errorf("compare needs exactly two units, got %d", c.NArg())
			}
			a, b := units.Unit(c.Args().Get(0)), units.Unit(c.Args().Get(1))
			if !units.AreComparable(a, b) {
				fmt.Fprintf(c.App.Writer, "%s (%s) and %s (%s) are not comparable\n", a, units.DimensionOf(a), b, units.DimensionOf(b))
				return cli.Exit("", 2)
			}
			base := units.BaseUnitOf(a)
			fmt.Fprintf(c.App.Writer, "%s and %s are comparable in %s: 1 %s = %v %s, 1 %s = %v %s\n",
				a, b, base, a, units.ToBaseUnits(1, a), base, b, units.ToBaseUnits(1, b), base)
			return nil
		},
	}
}

// =============================================================================
// UNITS COMMAND
// =============================================================================

func unitsCommand() *cli.Command {
	return &cli.Command{
		Name:  "units",
		Usage: "List supported units",
		Action: func(c *cli.Context) error {
			tw := tabwriter.NewWriter(c.App.Writer, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "UNIT\tLABEL\tDIMENSION\tBASE")
			for _, e := range units.Catalog() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Value, e.Label, e.Dimension, e.BaseUnit)
			}
			return tw.Flush()
		},
	}
}
