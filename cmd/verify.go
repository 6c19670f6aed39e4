package cmd

import (
	"fmt"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/spf13/cobra"

	"github.com/drksci/resumepdf/internal/core/services"
	"github.com/drksci/resumepdf/pkg/ui"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the published PDF against the embedded copy",
	Long: `Read the published résumé back from disk and compare its size and
SHA-256 digest with the embedded document.

Exits non-zero if the file is missing or differs.`,
	Args: cobra.NoArgs,
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	resp, err := verifyService.Execute(getContext(), services.VerifyRequest{
		Payload:     resumePayload(),
		Destination: resumeDestination(),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.FormatMuted(resp.Path))
	fmt.Fprintln(out, ui.RenderKeyValue("Size", strconv.Itoa(resp.Size)+" bytes"))
	fmt.Fprintln(out, ui.RenderKeyValue("SHA-256", resp.Digest))

	if !resp.Match {
		fmt.Fprintln(out, ui.RenderKeyValue("Expected", resp.ExpectedDigest+" ("+strconv.Itoa(resp.ExpectedSize)+" bytes)"))
		fmt.Fprintln(out, ui.FormatInfo("Run 'resumepdf' to rewrite it"))
		return goerr.Wrap(services.ErrPayloadMismatch, "verification failed", goerr.V("path", resp.Path))
	}

	fmt.Fprintln(out, ui.FormatSuccess("Matches embedded document"))
	return nil
}
