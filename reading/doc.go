// Package reading defines the record model flowing through the filter stage:
// named, timestamped readings carrying ordered, typed scalar datapoints.
package reading
