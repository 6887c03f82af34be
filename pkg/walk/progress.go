package walk

// ProgressFunc receives one event per produced walk. current counts from 1
// to total; label and unit describe the batch for display purposes.
// Implementations must not retain or modify the walks themselves.
type ProgressFunc func(current, total int, label, unit string)
