// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwstat exports the access counters of an hwlib.SRAM as Prometheus
// metrics.
//
package hwstat

import (
	"github.com/db47h/hwmem/hwlib"
	"github.com/prometheus/client_golang/prometheus"
)

// A StatsSource provides access counters. *hwlib.SRAM implements it.
//
type StatsSource interface {
	Stats() hwlib.Stats
}

// Collector is a prometheus.Collector reading counters from a StatsSource
// on every scrape.
//
type Collector struct {
	src      StatsSource
	reads    *prometheus.Desc
	writes   *prometheus.Desc
	rejected *prometheus.Desc
}

// NewCollector returns a collector for src. Metric names are prefixed with
// namespace. The collector is not registered.
//
func NewCollector(namespace string, src StatsSource) *Collector {
	name := func(n string) string { return prometheus.BuildFQName(namespace, "sram", n) }
	return &Collector{
		src:      src,
		reads:    prometheus.NewDesc(name("reads_total"), "Successful SRAM reads.", nil, nil),
		writes:   prometheus.NewDesc(name("writes_total"), "Successful SRAM writes.", nil, nil),
		rejected: prometheus.NewDesc(name("rejected_total"), "SRAM accesses rejected by address or width validation.", nil, nil),
	}
}

// Describe implements prometheus.Collector.
//
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.reads
	ch <- c.writes
	ch <- c.rejected
}

// Collect implements prometheus.Collector.
//
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	st := c.src.Stats()
	ch <- prometheus.MustNewConstMetric(c.reads, prometheus.CounterValue, float64(st.Reads))
	ch <- prometheus.MustNewConstMetric(c.writes, prometheus.CounterValue, float64(st.Writes))
	ch <- prometheus.MustNewConstMetric(c.rejected, prometheus.CounterValue, float64(st.Rejected))
}
