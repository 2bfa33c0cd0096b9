package bourse

// EntryCallbackFunc observes executions as they are recorded. Registered
// through Exchange.SetEntryCallback and invoked synchronously, once per
// entry.
type EntryCallbackFunc func(entry Entry)
