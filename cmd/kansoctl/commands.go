package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/comitanigiacomo/kanso-wellness/internal/core/analytics"
	"github.com/comitanigiacomo/kanso-wellness/internal/core/domain"
	"github.com/comitanigiacomo/kanso-wellness/internal/core/services"
)

// dateFlag parses --date; an empty value means today.
func dateFlag(cmd *cobra.Command) (domain.Date, error) {
	raw, _ := cmd.Flags().GetString("date")
	if raw == "" {
		return domain.Date{}, nil
	}
	return domain.ParseDate(raw)
}

// --- habit ---

var habitCmd = &cobra.Command{
	Use:   "habit",
	Short: "Manage habits",
}

var habitListCmd = &cobra.Command{
	Use:   "list",
	Short: "List habits with today's state and current streak",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		habits, err := current.Habits.List(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), habits)
		}
		if len(habits) == 0 {
			printWarning("No habits yet. Add one with: kansoctl habit add <name>")
			return nil
		}

		engine := analytics.New(current.Clock.Location)
		today := current.Clock.Today()
		for _, h := range habits {
			mark := " "
			if h.CompletedOn(today) {
				mark = "x"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "[%s] %s  streak %d, %d days total\n", mark, h.Name, engine.CurrentStreak(h, today), h.CompletionCount())
		}
		return nil
	},
}

var habitAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a habit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := current.Habits.Add(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printSuccess("Added habit %q", h.Name)
		return nil
	},
}

var habitRenameCmd = &cobra.Command{
	Use:   "rename <old> <new>",
	Short: "Rename a habit, keeping its history",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := current.Habits.Rename(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		printSuccess("Renamed %q to %q", args[0], h.Name)
		return nil
	},
}

var habitToggleCmd = &cobra.Command{
	Use:   "toggle <name>",
	Short: "Mark or unmark a habit as done",
	Long: `Mark or unmark a habit as done for a day.

Examples:
  kansoctl habit toggle Reading
  kansoctl habit toggle Reading --date 2026-03-01`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		day, err := dateFlag(cmd)
		if err != nil {
			return err
		}

		res, err := current.Habits.Toggle(ctx, services.ToggleHabitInput{Name: args[0], Date: day})
		if err != nil {
			return err
		}

		// The CLI exits right away, so milestones are evaluated inline.
		unlocked, err := current.Milestones.Process(ctx, current.Clock.Today())
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), res)
		}
		state := "not done"
		if res.Completed {
			state = "done"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s on %s: %s (streak %d)\n", res.Habit.Name, res.Date, state, res.Streak)
		for _, m := range unlocked {
			printSuccess("Milestone unlocked: %s (%d day streak)", m.Title, m.Streak)
		}
		return nil
	},
}

var habitDeleteCmd = &cobra.Command{
	Use:     "delete <name>",
	Aliases: []string{"rm"},
	Short:   "Delete a habit and its history",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := current.Habits.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		printSuccess("Deleted habit %q", args[0])
		return nil
	},
}

var habitProgressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show how many habits are done",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := dateFlag(cmd)
		if err != nil {
			return err
		}
		p, err := current.Habits.Progress(cmd.Context(), day)
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), p)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s %d/%d (%d%%)\n", p.Date, progressBar(p.Percent, 20), p.Completed, p.Total, p.Percent)
		return nil
	},
}

func init() {
	habitToggleCmd.Flags().String("date", "", "day to toggle, YYYY-MM-DD (default: today)")
	habitProgressCmd.Flags().String("date", "", "day to report, YYYY-MM-DD (default: today)")
	habitCmd.AddCommand(habitListCmd, habitAddCmd, habitRenameCmd, habitToggleCmd, habitDeleteCmd, habitProgressCmd)
}

// --- mood ---

var moodCmd = &cobra.Command{
	Use:   "mood",
	Short: "Log and review moods",
}

var moodLogCmd = &cobra.Command{
	Use:   "log <emoji>",
	Short: "Log how you feel right now",
	Long: `Log how you feel right now.

Examples:
  kansoctl mood log 😊
  kansoctl mood log 😔 --note "long day"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		note, _ := cmd.Flags().GetString("note")
		entry, err := current.Moods.Log(cmd.Context(), args[0], note)
		if err != nil {
			return err
		}
		printSuccess("Logged %s", entry.Emoji)
		return nil
	},
}

var moodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List moods, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		moods, err := current.Moods.List(cmd.Context())
		if err != nil {
			return err
		}
		if limit > 0 && len(moods) > limit {
			moods = moods[:limit]
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), moods)
		}
		loc := current.Clock.Location
		for _, m := range moods {
			line := fmt.Sprintf("%s  %s", time.UnixMilli(m.Timestamp).In(loc).Format("2006-01-02 15:04"), m.Emoji)
			if m.Note != "" {
				line += "  " + m.Note
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

var moodClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every logged mood",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		confirm, _ := cmd.Flags().GetBool("confirm")
		if !confirm {
			return fmt.Errorf("this deletes every mood entry; pass --confirm to proceed")
		}
		if err := current.Moods.Clear(cmd.Context()); err != nil {
			return err
		}
		printSuccess("Mood history cleared")
		return nil
	},
}

func init() {
	moodLogCmd.Flags().String("note", "", "optional note")
	moodListCmd.Flags().Int("limit", 20, "maximum entries to show (0 for all)")
	moodClearCmd.Flags().Bool("confirm", false, "confirm deletion")
	moodCmd.AddCommand(moodLogCmd, moodListCmd, moodClearCmd)
}

// --- water ---

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Track daily water intake",
}

var waterAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add glasses or millilitres to today",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		glasses, _ := cmd.Flags().GetInt("glasses")
		ml, _ := cmd.Flags().GetInt("ml")

		var (
			h   domain.Hydration
			err error
		)
		if ml > 0 {
			h, err = current.Wellness.AddMillilitres(cmd.Context(), ml)
		} else {
			h, err = current.Wellness.AddGlasses(cmd.Context(), glasses)
		}
		if err != nil {
			return err
		}
		return printHydration(cmd, h)
	},
}

var waterRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Remove one glass from today",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := current.Wellness.RemoveGlass(cmd.Context())
		if err != nil {
			return err
		}
		return printHydration(cmd, h)
	},
}

var waterShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show intake for a day and the week before it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := dateFlag(cmd)
		if err != nil {
			return err
		}
		h, err := current.Wellness.Hydration(cmd.Context(), day)
		if err != nil {
			return err
		}
		if err := printHydration(cmd, h); err != nil || jsonOutput {
			return err
		}
		for _, d := range h.History {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s %d\n", d.Date, d.Glasses)
		}
		return nil
	},
}

var waterGoalCmd = &cobra.Command{
	Use:   "goal <glasses>",
	Short: "Set the daily goal in glasses",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("goal must be a number: %w", err)
		}
		if err := current.Wellness.SetDailyGoal(cmd.Context(), n); err != nil {
			return err
		}
		printSuccess("Daily water goal set to %d glasses", n)
		return nil
	},
}

func printHydration(cmd *cobra.Command, h domain.Hydration) error {
	if jsonOutput {
		return printJSON(cmd.OutOrStdout(), h)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s %d/%d glasses (%d%%)\n", h.Date, progressBar(h.Percent, 20), h.Glasses, h.Goal, h.Percent)
	return nil
}

func init() {
	waterAddCmd.Flags().Int("glasses", 1, "glasses to add")
	waterAddCmd.Flags().Int("ml", 0, "millilitres to add, converted at 250 ml per glass")
	waterShowCmd.Flags().String("date", "", "day to show, YYYY-MM-DD (default: today)")
	waterCmd.AddCommand(waterAddCmd, waterRemoveCmd, waterShowCmd, waterGoalCmd)
}

// --- meditate ---

var meditateCmd = &cobra.Command{
	Use:   "meditate <type> <minutes>",
	Short: "Record a meditation session",
	Long: `Record a meditation session that started now.

Examples:
  kansoctl meditate mindfulness 10
  kansoctl meditate breathing 5 --incomplete
  kansoctl meditate summary`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		minutes, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("minutes must be a number: %w", err)
		}
		incomplete, _ := cmd.Flags().GetBool("incomplete")

		s, err := current.Wellness.RecordSession(cmd.Context(), services.RecordSessionInput{
			Type:      args[0],
			Minutes:   minutes,
			Completed: !incomplete,
		})
		if err != nil {
			return err
		}
		printSuccess("Recorded %d min of %s", s.Duration, s.Type)
		return nil
	},
}

var meditateSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Show meditation totals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := dateFlag(cmd)
		if err != nil {
			return err
		}
		sum, err := current.Wellness.MeditationSummary(cmd.Context(), day)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), sum)
	},
}

func init() {
	meditateCmd.Flags().Bool("incomplete", false, "the session was cut short")
	meditateSummaryCmd.Flags().String("date", "", "reference day, YYYY-MM-DD (default: today)")
	meditateCmd.AddCommand(meditateSummaryCmd)
}

// --- goal ---

var goalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Manage goals and challenges",
}

var goalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		goals, err := current.Goals.List(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), goals)
		}
		for _, g := range goals {
			done := ""
			if g.IsCompleted {
				done = " " + colorize(colorGreen, "completed")
			}
			percent := 0
			if g.TargetDays > 0 {
				percent = g.CurrentProgress * 100 / g.TargetDays
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s %s %d/%d%s\n", g.ID, g.Title, progressBar(percent, 10), g.CurrentProgress, g.TargetDays, done)
		}
		return nil
	},
}

var goalAddCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Create a goal",
	Long: `Create a goal. Without --days the target is read from the title:
"week" means 7 days, "10-day" or "5 days" set the number, anything else is 7.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		days, _ := cmd.Flags().GetInt("days")
		desc, _ := cmd.Flags().GetString("description")
		g, err := current.Goals.Create(cmd.Context(), services.CreateGoalInput{
			Title:       args[0],
			Description: desc,
			TargetDays:  days,
		})
		if err != nil {
			return err
		}
		printSuccess("Created goal %s (%d days)", g.ID, g.TargetDays)
		return nil
	},
}

var goalAdvanceCmd = &cobra.Command{
	Use:   "advance <id>",
	Short: "Add one day of progress to a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, completed, err := current.Goals.Advance(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if completed {
			printSuccess("Goal %q completed!", g.Title)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d/%d\n", g.Title, g.CurrentProgress, g.TargetDays)
		return nil
	},
}

var goalDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := current.Goals.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		printSuccess("Deleted goal %s", args[0])
		return nil
	},
}

var goalChallengesCmd = &cobra.Command{
	Use:   "challenges",
	Short: "List the challenges you can join",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		list := current.Goals.Challenges()
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), list)
		}
		for _, c := range list {
			fmt.Fprintf(cmd.OutOrStdout(), "%s %-16s %2d days  %s\n", c.Emoji, c.ID, c.DurationDays, c.Description)
		}
		return nil
	},
}

var goalJoinCmd = &cobra.Command{
	Use:   "join <challenge>",
	Short: "Start a goal from a challenge",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := current.Goals.Join(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printSuccess("Joined %q as goal %s", g.Title, g.ID)
		return nil
	},
}

func init() {
	goalAddCmd.Flags().Int("days", 0, "target days (default: derived from the title)")
	goalAddCmd.Flags().String("description", "", "optional description")
	goalCmd.AddCommand(goalListCmd, goalAddCmd, goalAdvanceCmd, goalDeleteCmd, goalChallengesCmd, goalJoinCmd)
}

// --- analytics ---

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show streaks, completion rates and mood trend",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := current.Analytics.Summary(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), s)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintln(w, colorize(colorBold, "Kanso stats for "+s.Date.String()))
		printStatus(w, "Habits", "%d", s.TotalHabits)
		printStatus(w, "Weekly completion", "%d%%", s.WeeklyRate)
		printStatus(w, "Monthly completion", "%d%%", s.MonthlyRate)
		printStatus(w, "Best streak", "%d days", s.BestStreak)
		printStatus(w, "Longest streak", "%d days", s.LongestStreak)
		printStatus(w, "Perfect days in a row", "%d", s.PerfectStreak)
		printStatus(w, "Mood trend", "%+d%% (%s)", s.MoodTrend, s.MoodDirection)
		for _, a := range s.Achievements {
			printStatus(w, "Achievement", "%s", a.Title)
		}
		for _, in := range s.Insights {
			fmt.Fprintln(w, colorize(colorCyan, "→ "+in.Message))
		}
		return nil
	},
}

var calendarCmd = &cobra.Command{
	Use:   "calendar",
	Short: "Show a month of completions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		today := current.Clock.Today()
		year, _ := cmd.Flags().GetInt("year")
		month, _ := cmd.Flags().GetInt("month")
		if year == 0 {
			year = today.Year()
		}
		if month == 0 {
			month = int(today.Month())
		}

		cal, err := current.Analytics.Calendar(cmd.Context(), year, time.Month(month))
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), cal)
		}

		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "%s %d\n", cal.Month, cal.Year)
		fmt.Fprintln(w, "Mo Tu We Th Fr Sa Su")

		var b strings.Builder
		if len(cal.Days) > 0 {
			offset := (int(cal.Days[0].Date.Weekday()) + 6) % 7
			b.WriteString(strings.Repeat("   ", offset))
		}
		for _, d := range cal.Days {
			b.WriteString(calendarCell(d))
			if d.Date.Weekday() == time.Sunday {
				b.WriteString("\n")
			} else {
				b.WriteString(" ")
			}
		}
		fmt.Fprintln(w, strings.TrimRight(b.String(), " \n"))
		printStatus(w, "Current streak", "%d", cal.ActivityStreak)
		printStatus(w, "Best streak", "%d", cal.BestStreak)
		printStatus(w, "Completion", "%d%%", cal.CompletionRate)
		return nil
	},
}

func calendarCell(d domain.CalendarDay) string {
	cell := fmt.Sprintf("%2d", d.Day)
	switch d.Level {
	case domain.DayExcellent:
		cell = colorize(colorGreen, cell)
	case domain.DayGood:
		cell = colorize(colorCyan, cell)
	case domain.DayOK:
		cell = colorize(colorYellow, cell)
	}
	if d.IsToday {
		cell = colorize(colorBold, cell)
	}
	return cell
}

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Today at a glance",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := current.Analytics.Dashboard(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), d)
		}
		w := cmd.OutOrStdout()
		printStatus(w, "Habits", "%s %d%%", progressBar(d.HabitCompletion, 10), d.HabitCompletion)
		printStatus(w, "Water", "%d/%d glasses", d.WaterGlasses, d.WaterGoal)
		printStatus(w, "Meditation", "%d min", d.MeditationMinutes)
		printStatus(w, "Perfect streak", "%d", d.PerfectStreak)
		printStatus(w, "This week", "%d%%", d.WeeklyRate)
		printStatus(w, "Mood", "%s", d.MoodDirection)
		return nil
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Export the weekly report as CSV or PDF",
	Long: `Export the seven days ending at --date.

Examples:
  kansoctl report > week.csv
  kansoctl report --format pdf --output week.pdf`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		day, err := dateFlag(cmd)
		if err != nil {
			return err
		}
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		out, err := current.Reports.ExportWeekly(cmd.Context(), day, format)
		if err != nil {
			return err
		}

		if output == "" {
			_, err := cmd.OutOrStdout().Write(out.Body)
			return err
		}
		if err := os.WriteFile(output, out.Body, 0o600); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		printSuccess("Wrote %s (%d bytes)", output, len(out.Body))
		return nil
	},
}

var milestonesCmd = &cobra.Command{
	Use:   "milestones",
	Short: "List streak milestones reached so far",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ms, err := current.Analytics.Milestones(cmd.Context())
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), ms)
		}
		for _, m := range ms {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s (%d days)\n", m.ReachedOn, m.Title, m.Streak)
		}
		return nil
	},
}

func init() {
	calendarCmd.Flags().Int("year", 0, "year (default: current)")
	calendarCmd.Flags().Int("month", 0, "month 1-12 (default: current)")
	reportCmd.Flags().String("format", domain.FormatCSV, "csv or pdf")
	reportCmd.Flags().String("date", "", "last day of the week, YYYY-MM-DD (default: today)")
	reportCmd.Flags().String("output", "", "output file path (default: stdout)")
}

// --- pin ---

var pinCmd = &cobra.Command{
	Use:   "pin",
	Short: "Manage the app PIN",
}

var pinSetCmd = &cobra.Command{
	Use:   "set <pin>",
	Short: "Set or change the app PIN",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cur, _ := cmd.Flags().GetString("current")
		if err := current.Auth.SetPIN(cmd.Context(), services.SetPINInput{Current: cur, PIN: args[0]}); err != nil {
			return err
		}
		printSuccess("PIN saved")
		return nil
	},
}

var pinRemoveCmd = &cobra.Command{
	Use:   "remove <current>",
	Short: "Remove the app PIN",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := current.Auth.RemovePIN(cmd.Context(), args[0]); err != nil {
			return err
		}
		printSuccess("PIN removed")
		return nil
	},
}

var pinTokenCmd = &cobra.Command{
	Use:   "token <pin>",
	Short: "Print a bearer token for the HTTP API",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		token, err := current.Auth.Login(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	pinSetCmd.Flags().String("current", "", "current PIN, required when one is set")
	pinCmd.AddCommand(pinSetCmd, pinRemoveCmd, pinTokenCmd)
}

// --- prefs ---

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Inspect, back up and restore the raw preference store",
}

var prefsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List stored keys",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		keys, err := current.Keys(cmd.Context())
		if err != nil {
			return err
		}
		for _, k := range keys {
			fmt.Fprintln(cmd.OutOrStdout(), k)
		}
		return nil
	},
}

var prefsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Dump every key as a JSON object",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		prefs, err := current.ExportPreferences(cmd.Context())
		if err != nil {
			return err
		}

		if output == "" {
			return printJSON(cmd.OutOrStdout(), prefs)
		}
		data, err := json.MarshalIndent(prefs, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(output, data, 0o600); err != nil {
			return fmt.Errorf("writing backup: %w", err)
		}
		printSuccess("Exported %d keys to %s", len(prefs), output)
		return nil
	},
}

var prefsImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore keys from a JSON backup, overwriting existing ones",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading backup: %w", err)
		}
		var prefs map[string]string
		if err := json.Unmarshal(data, &prefs); err != nil {
			return fmt.Errorf("backup is not a JSON object of strings: %w", err)
		}

		n, err := current.ImportPreferences(cmd.Context(), prefs)
		if err != nil {
			return err
		}
		printSuccess("Imported %d keys", n)
		return nil
	},
}

func init() {
	prefsExportCmd.Flags().String("output", "", "output file path (default: stdout)")
	prefsCmd.AddCommand(prefsKeysCmd, prefsExportCmd, prefsImportCmd)
}

// --- data ---

var searchCmd = &cobra.Command{
	Use:   "search <text>",
	Short: "Find habits by name and moods by note",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := current.Data.Search(cmd.Context(), strings.Join(args, " "))
		if err != nil {
			return err
		}
		if jsonOutput {
			return printJSON(cmd.OutOrStdout(), res)
		}
		if res.Empty() {
			printWarning("Nothing matches %q", res.Query)
			return nil
		}

		w := cmd.OutOrStdout()
		for _, h := range res.Habits {
			fmt.Fprintf(w, "habit  %s  (streak %d days)\n", h.Name, h.Streak)
		}
		for _, m := range res.Moods {
			fmt.Fprintf(w, "mood   %s  %s %s\n", m.Date, m.Emoji, m.Note)
		}
		return nil
	},
}

var clearDataCmd = &cobra.Command{
	Use:   "clear-data",
	Short: "Delete every habit, mood and goal",
	Long: `Delete every habit, mood and goal, joined challenges included.
Water intake, meditation sessions, the PIN and milestones are kept.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		confirm, _ := cmd.Flags().GetBool("confirm")
		if !confirm {
			return fmt.Errorf("this deletes all habits, moods and goals; pass --confirm to proceed")
		}
		if err := current.Data.ClearAll(cmd.Context()); err != nil {
			return err
		}
		printSuccess("All data cleared")
		return nil
	},
}

func init() {
	clearDataCmd.Flags().Bool("confirm", false, "confirm deletion")
}
