package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/galleykit/galley/pkg/catalog"
	"github.com/galleykit/galley/pkg/plan"
)

// catalogCommand creates the catalog command for browsing equipment.
func (c *CLI) catalogCommand() *cobra.Command {
	var (
		category    string
		business    string
		area        float64
		interactive bool
	)

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse the equipment catalog",
		Long: `Browse the equipment catalog.

Without flags, lists every catalog entry. Use --category to filter by work
zone, or --business to show the default equipment set for a business type
(add --area to see the recommended set for a given kitchen size instead).

With --interactive, opens a browser where items can be picked; the
selected ids are printed in a form ready for 'simulate --equipment'.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			specs, err := selectSpecs(category, business, area)
			if err != nil {
				return err
			}
			if interactive {
				return c.runCatalogBrowser(specs)
			}
			printCatalog(specs)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by zone category (storage, preparation, cooking, washing)")
	cmd.Flags().StringVarP(&business, "business", "b", "", "show the default set for a business type")
	cmd.Flags().Float64Var(&area, "area", 0, "kitchen area in m² (with --business, shows the recommended set)")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick equipment interactively")

	return cmd
}

// selectSpecs applies the catalog filters.
func selectSpecs(category, business string, area float64) ([]plan.EquipmentSpec, error) {
	switch {
	case category != "":
		cat := plan.Category(category)
		if _, ok := plan.CategoryZone[cat]; !ok {
			return nil, fmt.Errorf("invalid category: %q (must be one of: storage, preparation, cooking, washing)", category)
		}
		return catalog.ByCategory(cat), nil
	case business != "" && area > 0:
		return catalog.Recommended(plan.Business(business), area), nil
	case business != "":
		return catalog.ForBusiness(plan.Business(business)), nil
	default:
		return catalog.All(), nil
	}
}

// printCatalog lists specs as a table.
func printCatalog(specs []plan.EquipmentSpec) {
	t := newTable("ID", "Name", "Zone", "Size", "Clearance", "Needs")
	for _, s := range specs {
		t.Row(
			s.ID, s.Name, string(s.Category),
			fmt.Sprintf("%.1f × %.1f m", s.Width, s.Depth),
			fmt.Sprintf("%.1f / %.1f m", s.ClearanceFront, s.ClearanceSides),
			needsLabel(s),
		)
	}
	fmt.Println(t)
	printDetail("%d items", len(specs))
}

// runCatalogBrowser launches the interactive equipment picker.
func (c *CLI) runCatalogBrowser(specs []plan.EquipmentSpec) error {
	model := NewEquipmentListModel(specs)
	p := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run catalog browser: %w", err)
	}
	m, ok := final.(EquipmentListModel)
	if !ok || !m.Done || len(m.Selected) == 0 {
		printInfo("No equipment selected")
		return nil
	}
	printSuccess("%d items selected", len(m.Selected))
	printNewline()
	printNextStep("Simulate", "galley simulate --seats 40 --equipment "+strings.Join(m.Selected, ","))
	return nil
}
