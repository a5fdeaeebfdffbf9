// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	batches      *prometheus.CounterVec
	transactions *prometheus.CounterVec
	height       prometheus.Gauge
}

func newMetrics(registerer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		batches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "prodcon",
				Name:      "batches_total",
				Help:      "Batches processed by outcome.",
			},
			[]string{"outcome"},
		),
		transactions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "prodcon",
				Name:      "transactions_total",
				Help:      "Transactions processed by outcome.",
			},
			[]string{"outcome"},
		),
		height: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "prodcon",
				Name:      "height",
				Help:      "Number of committed batches.",
			},
		),
	}

	for _, c := range []prometheus.Collector{m.batches, m.transactions, m.height} {
		if err := registerer.Register(c); nil != err {
			return nil, err
		}
	}
	return m, nil
}
