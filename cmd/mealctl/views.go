package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/osse101/FreshMeal_Go/internal/bootstrap"
	"github.com/osse101/FreshMeal_Go/internal/domain"
	"github.com/osse101/FreshMeal_Go/internal/mealplan"
	"github.com/osse101/FreshMeal_Go/internal/recipe"
	"github.com/osse101/FreshMeal_Go/internal/shopping"
)

func (c *cli) newWeekCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Print the calendar week containing a day",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := bootstrap.OpenStore(cmd.Context(), c.cfg, bootstrap.StoreOptions{SeedDemo: c.cfg.SeedDemoData})
			if err != nil {
				return err
			}
			defer store.Close()

			recipes := recipe.NewService(store.Recipes(), store.MealPlans(), recipe.CacheConfig{
				Size: c.cfg.RecipeCacheSize,
				TTL:  c.cfg.RecipeCacheTTL,
			})
			plans := mealplan.NewService(store.MealPlans(), recipes, nil, mealplan.Config{
				Location:      c.cfg.Location,
				DefaultUserID: c.cfg.DefaultUserID,
			})

			ref := plans.Today()
			if date != "" {
				if ref, err = domain.ParseDate(date); err != nil {
					return err
				}
			}

			week, err := plans.GetWeek(cmd.Context(), ref)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprint(tw, "DAY")
			for _, slot := range domain.MealSlots {
				fmt.Fprintf(tw, "\t%s", slot.Title())
			}
			fmt.Fprintln(tw)
			for _, day := range week.Days {
				fmt.Fprintf(tw, "%s %s", day.Date.Time().Format("Mon"), day.Date)
				for _, meal := range day.Meals {
					name := "-"
					if meal.Recipe != nil {
						name = meal.Recipe.Name
					}
					fmt.Fprintf(tw, "\t%s", name)
				}
				fmt.Fprintln(tw)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "any day of the week, YYYY-MM-DD (default today)")
	return cmd
}

func (c *cli) newShoppingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shopping",
		Short: "Print the shopping list grouped by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := bootstrap.OpenStore(cmd.Context(), c.cfg, bootstrap.StoreOptions{SeedDemo: c.cfg.SeedDemoData})
			if err != nil {
				return err
			}
			defer store.Close()

			groups, err := shopping.NewService(store.Shopping()).List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(groups) == 0 {
				fmt.Fprintln(out, "shopping list is empty")
				return nil
			}
			for _, g := range groups {
				fmt.Fprintf(out, "%s\n", g.Category)
				for _, item := range g.Items {
					mark := " "
					if item.Completed {
						mark = "x"
					}
					fmt.Fprintf(out, "  [%s] %s\n", mark, item.Name)
				}
			}
			return nil
		},
	}
}
