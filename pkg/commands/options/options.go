// Package options defines shared flag helpers for CLI commands.
package options

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// StatusOptions captures lifecycle filter flags.
type StatusOptions struct {
	Status string
	All    bool
}

func AddStatusArgs(cmd *cobra.Command, o *StatusOptions) {
	cmd.Flags().StringVarP(&o.Status, "status", "s", "active",
		"Filter by lifecycle status (active, archived, trashed).")
	cmd.Flags().BoolVar(&o.All, "all", false,
		"Include every lifecycle status.")
}

// IDOptions
type IDOptions struct {
	ShowID bool
	ID     string
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of notes, sessions, and tasks.")
}

// ScheduleOptions captures a session's day/time/repeat flags.
type ScheduleOptions struct {
	Day    string
	Time   string
	Repeat string
}

func AddScheduleArgs(cmd *cobra.Command, o *ScheduleOptions) {
	cmd.Flags().StringVarP(&o.Day, "day", "d", "",
		"Day of week (Mon..Sun).")
	cmd.Flags().StringVarP(&o.Time, "time", "t", "",
		"Time of day (HH:MM).")
	cmd.Flags().StringVarP(&o.Repeat, "repeat", "r", "none",
		"Repeat frequency (none, daily, weekly, monthly, yearly).")
}

// DueOptions captures a task's deadline flags. Negative values mean unset so
// January (month index 0) stays expressible.
type DueOptions struct {
	Day   int
	Month int
}

func AddDueArgs(cmd *cobra.Command, o *DueOptions) {
	cmd.Flags().IntVar(&o.Day, "day", -1,
		"Due day of month (1-31).")
	cmd.Flags().IntVar(&o.Month, "month", -1,
		"Due month index (0-11, January is 0).")
}

// DayPtr returns the day flag as the engines expect it.
func (o *DueOptions) DayPtr() *int {
	if o.Day < 0 {
		return nil
	}
	d := o.Day
	return &d
}

// MonthPtr returns the month flag as the engines expect it.
func (o *DueOptions) MonthPtr() *int {
	if o.Month < 0 {
		return nil
	}
	m := o.Month
	return &m
}

// OutputOptions
type OutputOptions struct {
	JSON bool
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

func (o *OutputOptions) HandleError(err error) error {
	if o.JSON && err != nil {
		out := map[string]string{
			"error": err.Error(),
		}
		b, err := json.Marshal(out)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}
	return err
}
