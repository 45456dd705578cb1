package dispatch

import (
	"strings"

	"github.com/raushankrgupta/product-clipper/models"
	"github.com/raushankrgupta/product-clipper/notify"
)

func success(title, message string) notify.Notification {
	return notify.Notification{Title: title, Message: message, Severity: notify.SeveritySuccess, Duration: notify.DurationShort}
}

func failure(title, message string) notify.Notification {
	return notify.Notification{Title: title, Message: message, Severity: notify.SeverityError, Duration: notify.DurationLong}
}

var (
	permissionError = failure("Permission Error", "Cannot access this page. Make sure you're on an Amazon product page.")
	unsupportedSite = failure("Unsupported Page", "Navigate to an Amazon product page to begin.")
	noProductData   = failure("No Product Data", "This page does not contain product data.")
)

var singleFieldMessages = map[models.Action]struct {
	copied  notify.Notification
	missing notify.Notification
}{
	models.ActionImage: {
		copied:  success("Image Link Copied!", "Product image URL has been copied to clipboard."),
		missing: failure("No Image Found", "Could not find product image on this page."),
	},
	models.ActionAffiliate: {
		copied:  success("Affiliate Link Copied!", "Product affiliate link has been copied to clipboard."),
		missing: failure("No Affiliate Link Found", "Could not find affiliate link on this page."),
	},
	models.ActionTitle: {
		copied:  success("Title Copied!", "Product title has been copied to clipboard."),
		missing: failure("No Title Found", "Could not find product title on this page."),
	},
}

func successNotification(action models.Action) notify.Notification {
	if m, ok := singleFieldMessages[action]; ok {
		return m.copied
	}
	return success("All Product Data Copied!", "All selected product data has been copied to clipboard.")
}

func partialNotification(missing []string) notify.Notification {
	return notify.Notification{
		Title:    "Partial Data Copied!",
		Message:  "Data copied successfully. Missing fields: " + strings.Join(missing, ", "),
		Severity: notify.SeverityWarning,
		Duration: notify.DurationLong,
	}
}
