// Package report renders schedule responses for terminals.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/responses"
)

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), bold(title))
	fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// PrintSchedule writes the title, Gantt chart and per-process table of one run.
func PrintSchedule(w io.Writer, resp responses.ScheduleResponse) {
	title := resp.Title
	if title == "" {
		title = strings.ToUpper(resp.Policy)
	}
	printTitle(w, title)
	PrintGantt(w, resp.Timeline)
	fmt.Fprintln(w)
	PrintTable(w, resp)
	fmt.Fprintf(w, "CPU utilization: %.2f%%  Idle: %d  Context switches: %d  Throughput: %.2f/t\n\n",
		resp.CpuUtilization, resp.IdleTime, resp.ContextSwitches, resp.CpuThroughput)
}

// PrintTable writes the per-process metrics with averages in the footer.
// The response column is present only when the policy reports it.
func PrintTable(w io.Writer, resp responses.ScheduleResponse) {
	withResponse := resp.AverageResponseTime != nil

	header := []string{"Process", "Arrival", "Burst", "Completion", "Turnaround", "Waiting"}
	if withResponse {
		header = append(header, "Response")
	}
	header = append(header, "Utilization")

	rows := make([][]string, 0, len(resp.Details))
	for _, d := range resp.Details {
		row := []string{
			d.Name,
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.CompletionTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.WaitingTime),
		}
		if withResponse {
			rt := ""
			if d.ResponseTime != nil {
				rt = fmt.Sprint(*d.ResponseTime)
			}
			row = append(row, rt)
		}
		row = append(row, fmt.Sprintf("%.2f%%", d.Utilization))
		rows = append(rows, row)
	}

	footer := []string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", resp.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", resp.AverageWaitingTime)}
	if withResponse {
		footer = append(footer, fmt.Sprintf("Average\n%.2f", *resp.AverageResponseTime))
	}
	footer = append(footer, "")

	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	table.SetAutoFormatHeaders(false)
	table.AppendBulk(rows)
	table.SetFooter(footer)
	table.Render()
}

// PrintComparison writes one summary row per policy.
func PrintComparison(w io.Writer, cmp responses.CompareResponse) {
	printTitle(w, "Policy comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Avg turnaround", "Avg waiting", "Avg response", "CPU util", "Switches", "End"})
	table.SetAutoFormatHeaders(false)
	for _, r := range cmp.Results {
		response := "-"
		if r.AverageResponseTime != nil {
			response = fmt.Sprintf("%.2f", *r.AverageResponseTime)
		}
		table.Append([]string{
			r.Title,
			fmt.Sprintf("%.2f", r.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			response,
			fmt.Sprintf("%.2f%%", r.CpuUtilization),
			fmt.Sprint(r.ContextSwitches),
			fmt.Sprint(r.Timeline.EndTime),
		})
	}
	table.Render()
}
