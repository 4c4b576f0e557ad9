package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/spf13/cobra"
)

var (
	AddrPing string

	PingCmd = &cobra.Command{
		Use:   "ping",
		Short: "Check that the Task Manager server is reachable.",
		Run: func(cmd *cobra.Command, args []string) {
			resp, err := http.Get(fmt.Sprintf("%s/ping", AddrPing))
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

			fmt.Println(string(body))
		},
	}
)

func init() {
	PingCmd.Flags().StringVarP(&AddrPing, "address", "a", "", "Web application address (required)")
	PingCmd.MarkFlagRequired("address")

	RootCmd.AddCommand(PingCmd)
}
