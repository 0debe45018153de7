/*
Package observability turns conversation lifecycle events into Prometheus metrics.

Metrics are collected through domain.LifecycleHooks, so the engine itself
stays free of any metrics dependency:

	m := observability.NewMetrics()
	eng, _ := intake.New(s, intake.WithLifecycleHooks(m.Hooks()))

A CLI run has no scrape endpoint, so the registry is usually dumped with
WriteToTextfile for the node exporter textfile collector.
*/
package observability
