package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-VenueBooking/internal/config"
	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/service/slots"
)

// newSlotsCommand печатает сетку слотов площадки без обращения к бэкенду
func newSlotsCommand(configPath *string) *cobra.Command {
	var (
		facilityID string
		date       string
	)

	cmd := &cobra.Command{
		Use:   "slots",
		Short: "Print the slot grid of a facility for a date (no bookings applied)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			location, err := cfg.Venue.Location()
			if err != nil {
				return err
			}

			facility, err := findFacility(cfg.FacilityList(), facilityID)
			if err != nil {
				return err
			}

			now := time.Now().In(location)
			day := domain.DateOnly(now)
			if date != "" {
				day, err = domain.ParseDate(date, location)
				if err != nil {
					return err
				}
			}

			engine := slots.NewEngine(cfg.Venue.Rules())
			view, err := engine.EvaluateDay(facility, day, nil, now)
			if err != nil {
				return err
			}

			return printDay(cmd.OutOrStdout(), view)
		},
	}

	cmd.Flags().StringVarP(&facilityID, "facility", "f", "", "facility id from config")
	cmd.Flags().StringVarP(&date, "date", "d", "", "date YYYY-MM-DD (default today)")
	_ = cmd.MarkFlagRequired("facility")

	return cmd
}

func findFacility(list []domain.Facility, id string) (domain.Facility, error) {
	for _, f := range list {
		if f.ID == id {
			return f, nil
		}
	}
	return domain.Facility{}, fmt.Errorf("facility %q not found in config", id)
}

func printDay(out io.Writer, view *slots.DayView) error {
	fmt.Fprintf(out, "%s (%s) %s\n", view.Facility.Name, view.Facility.Category, view.Date.Format(domain.DateFormat))
	if view.PoolClosed {
		fmt.Fprintln(out, "pool bookings are closed for today")
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLOT\tPOOL\tSTATUS")
	for _, s := range view.Slots {
		paired := "-"
		if s.PairedSlot != nil {
			paired = s.PairedSlot.Label()
		}

		status := "available"
		if !s.Bookable {
			status = s.Reason
		}
		if view.Facility.Category == domain.CategoryPool {
			status = fmt.Sprintf("%s (%d left)", status, s.CapacityRemaining)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\n", s.Slot.Label(), paired, status)
	}
	return w.Flush()
}
