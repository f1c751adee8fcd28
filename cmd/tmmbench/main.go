// Command tmmbench repeatedly solves a thin-film stack across a parameter
// sweep and reports latency/throughput/success-rate gauges to StatsD, the
// way this lineage's original benchmark tool reported HTTP load-test
// results: by accumulating into a vegeta.Metrics and pushing its summary
// over UDP.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"net"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"

	"github.com/opticore/tmm-core/optics"
)

func main() {
	statsdAddr := flag.String("statsd", "127.0.0.1:8125", "StatsD UDP address")
	iterations := flag.Int("iterations", 2000, "total number of solves to run across the angle/wavelength sweep")
	flag.Parse()

	stack := optics.NewStack(
		optics.NewConstantIndex(complex(1.0, 0)),
		optics.NewConstantIndex(complex(1.5, 0)),
	)
	if err := stack.InsertLayer(optics.NewConstantIndex(complex(1.38, 0)), 100); err != nil {
		log.Fatalf("tmmbench: building benchmark stack: %v", err)
	}

	var m vegeta.Metrics
	var seq uint64

	for i := 0; i < *iterations; i++ {
		theta := complex(float64(i%60)*math.Pi/180/2, 0)
		lambda := 400 + float64(i%300)

		start := time.Now()
		_, err := optics.Solve(stack, optics.S, theta, lambda)
		latency := time.Since(start)

		result := vegeta.Result{
			Attack:    "tmmbench",
			Seq:       seq,
			Timestamp: start,
			Latency:   latency,
		}
		if err != nil {
			result.Code = 500
			result.Error = err.Error()
		} else {
			result.Code = 200
		}
		m.Add(&result)
		seq++
	}
	m.Close()

	conn, err := net.Dial("udp", *statsdAddr)
	if err != nil {
		log.Fatalf("tmmbench: dialing statsd at %s: %v", *statsdAddr, err)
	}
	defer conn.Close()

	fmt.Fprintf(conn, "tmm.solve.success_rate:%.2f|g\n", m.Success*100)
	fmt.Fprintf(conn, "tmm.solve.throughput:%.2f|g\n", m.Throughput)
	fmt.Fprintf(conn, "tmm.solve.latency_mean_ms:%.4f|g\n", m.Latencies.Mean.Seconds()*1000)

	fmt.Printf("ran %d solves, success_rate=%.2f%% throughput=%.1f/s mean_latency=%s\n",
		*iterations, m.Success*100, m.Throughput, m.Latencies.Mean)
}
