package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"tm-client/services"

	"github.com/spf13/cobra"
)

type agendaTask struct {
	Name    string `json:"task_name"`
	DueDate string `json:"due_date"`
	Status  string `json:"status"`
}

type agendaView struct {
	DueToday    []agendaTask `json:"due_today"`
	DueThisWeek []agendaTask `json:"due_this_week"`
	Later       []agendaTask `json:"later"`
	Unscheduled []agendaTask `json:"unscheduled"`
}

var (
	AddrTasks string

	TasksCmd = &cobra.Command{
		Use:   "tasks",
		Short: "Show your agenda: tasks grouped by due date.",
		Run: func(cmd *cobra.Command, args []string) {
			cred, err := services.LoadCredentials()
			if err != nil {
				fmt.Printf("failed to load credentials, login first: %s\n", err.Error())
				os.Exit(1)
			}

			req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/tasks/agenda", AddrTasks), nil)
			req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", cred.Token))

			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				fmt.Printf("failed to reach out server: %s\n", err.Error())
				os.Exit(1)
			}

			body, err := io.ReadAll(resp.Body)
			defer resp.Body.Close()

			if err != nil {
				fmt.Printf("failed to read response from server: %s\n", err.Error())
				os.Exit(1)
			}

			if resp.StatusCode != http.StatusOK {
				fmt.Printf("Server rejected request with %d status and body: %s\n", resp.StatusCode, string(body))
				os.Exit(33)
			}

			var view agendaView
			if err := json.Unmarshal(body, &view); err != nil {
				fmt.Printf("failed to parse server response: %s\n", err.Error())
				os.Exit(1)
			}

			printBucket("Due today", view.DueToday)
			printBucket("Due this week", view.DueThisWeek)
			printBucket("Later", view.Later)
			printBucket("Unscheduled", view.Unscheduled)
		},
	}
)

func printBucket(title string, tasks []agendaTask) {
	fmt.Printf("%s:\n", title)
	if len(tasks) == 0 {
		fmt.Println("  (none)")
		return
	}
	for _, t := range tasks {
		due := t.DueDate
		if due == "" {
			due = "-"
		}
		fmt.Printf("  [%s] %s (due %s)\n", t.Status, t.Name, due)
	}
}

func init() {
	TasksCmd.Flags().StringVarP(&AddrTasks, "address", "a", "", "Web application address (required)")
	TasksCmd.MarkFlagRequired("address")

	RootCmd.AddCommand(TasksCmd)
}
