package porcelain

import "github.com/sirupsen/logrus"

// logger is the package-level structured logger that Init, CommitAll,
// Checkout, Branch, BranchDelete and Merge write Info-level entries
// through; the staging operations do not log. A library has no business
// calling os.Exit on error the way the teacher's command handlers do, so
// porcelain returns errors to its caller and only logs for observability.
var logger = logrus.WithField("component", "porcelain")
