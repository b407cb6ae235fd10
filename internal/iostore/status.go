package iostore

import (
	"fmt"

	"github.com/huangsam/orgpulse/schema"
)

// PrintStoreStatus prints run history store status information.
func PrintStoreStatus(status *schema.StoreStatus) {
	fmt.Printf("History Backend: %s\n", status.Backend)
	if status.Backend == schema.NoneBackend {
		fmt.Println("Run history tracking is disabled.")
		return
	}
	fmt.Printf("Total Runs: %d\n", status.RunCount)
	fmt.Printf("Total Repo Rows: %d\n", status.RepoRowCount)
	if status.LatestRun != nil {
		fmt.Printf("Latest Run: %s (%s)\n", status.LatestRun.RunID, status.LatestRun.OrgName)
		fmt.Printf("Generated At: %s\n", status.LatestRun.GeneratedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("Repos: %d, Vulns: %d, Critical Risk: %d\n",
			status.LatestRun.RepoCount, status.LatestRun.TotalVulns, status.LatestRun.RiskCritical)
	}
}
