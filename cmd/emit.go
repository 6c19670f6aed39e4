package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/drksci/resumepdf/internal/core/services"
)

func runEmit(cmd *cobra.Command, args []string) error {
	resp, err := emitService.Execute(getContext(), services.EmitRequest{
		Payload:     resumePayload(),
		Destination: resumeDestination(),
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), resp.Message())
	return nil
}
