package utils

import (
	"fmt"
	"strings"
)

// AddToLogMessage appends one entry to a run's log
func AddToLogMessage(logMessagesBuilder *strings.Builder, strToAdd string) {
	logMessagesBuilder.WriteString(strToAdd)
	logMessagesBuilder.WriteString(";\n")
}

// FlushLog prints a run's log under a component prefix and resets the builder
func FlushLog(component string, logMessagesBuilder *strings.Builder) {
	if logMessagesBuilder.Len() == 0 {
		return
	}
	fmt.Printf("[%s]\n%s", component, logMessagesBuilder.String())
	logMessagesBuilder.Reset()
}
