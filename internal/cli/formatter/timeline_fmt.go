package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/jmcalloway/proforma/internal/contract"
	"github.com/jmcalloway/proforma/internal/domain"
)

// FormatRecalcResult renders the outcome of a recalculation run.
func FormatRecalcResult(resp *contract.RecalcResponse) string {
	var b strings.Builder

	title := "Timeline Recalculated"
	if resp.DryRun {
		title = "Timeline Recalculated (dry run, nothing persisted)"
	}
	b.WriteString(Header(title) + "\n")
	fmt.Fprintf(&b, "  Nodes updated:      %d\n", resp.ItemsUpdated)
	fmt.Fprintf(&b, "  Critical path:      %d days\n", resp.CriticalPathDays)
	fmt.Fprintf(&b, "  Elapsed:            %d ms\n", resp.ElapsedMS)

	if len(resp.CriticalNodes) > 0 {
		b.WriteString("  Critical nodes:\n")
		for _, key := range resp.CriticalNodes {
			fmt.Fprintf(&b, "    %s %s\n", StyleRed.Render("●"), key)
		}
	} else {
		b.WriteString(Dim("  No critical nodes.") + "\n")
	}

	for _, w := range resp.Warnings {
		fmt.Fprintf(&b, "  %s %s\n", StyleYellow.Render("WARNING:"), w)
	}
	return b.String()
}

// FormatSchedule renders the persisted schedule table for a project.
func FormatSchedule(snap *contract.ScheduleSnapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n\n", Header(snap.Project.Name), Dim(snap.Project.DisplayID()))

	if len(snap.Items) > 0 {
		headers := []string{"Budget Item", "Start", "Finish", "Late Start", "Late Finish", "Float", "Critical"}
		rows := make([][]string, 0, len(snap.Items))
		for _, it := range snap.Items {
			rows = append(rows, []string{
				it.Name,
				fdate(it.EarlyStart),
				fdate(it.EarlyFinish),
				fdate(it.LateStart),
				fdate(it.LateFinish),
				ffloat(it.FloatDays),
				CriticalIndicator(it.Critical),
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	if len(snap.Milestones) > 0 {
		b.WriteString("\n")
		headers := []string{"Milestone", "Early", "Late", "Float", "Critical"}
		rows := make([][]string, 0, len(snap.Milestones))
		for _, m := range snap.Milestones {
			rows = append(rows, []string{
				m.Name,
				fdate(m.EarlyDate),
				fdate(m.LateDate),
				ffloat(m.FloatDays),
				CriticalIndicator(m.Critical),
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	if len(snap.Items) == 0 && len(snap.Milestones) == 0 {
		b.WriteString(Dim("  Nothing scheduled yet.") + "\n")
	}
	return b.String()
}

func fdate(t *time.Time) string {
	if t == nil {
		return Dim("-")
	}
	return t.Format(domain.DateLayout)
}

func ffloat(days *int) string {
	if days == nil {
		return Dim("-")
	}
	if *days == 0 {
		return StyleRed.Render("0d")
	}
	return fmt.Sprintf("%dd", *days)
}
