// Package metrics registers the Prometheus metrics exposed on /metrics.
// Registration happens via promauto at package load.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "harvestworld"

// ContentCreatedTotal counts user submissions by entity
// (article, expert_request, forum_topic, forum_reply, comment).
var ContentCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "content_created_total",
		Help:      "Total number of content items submitted, by entity.",
	},
	[]string{"entity"},
)

// ModerationDecisionsTotal counts admin review decisions.
// Labels:
//   - entity: "article" or "expert_request"
//   - decision: "approved" or "rejected"
var ModerationDecisionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "moderation_decisions_total",
		Help:      "Total number of moderation decisions, by entity and decision.",
	},
	[]string{"entity", "decision"},
)

// UploadsTotal counts file uploads by entity and result (ok, too_large, bad_type).
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of upload attempts, by entity and result.",
	},
	[]string{"entity", "result"},
)
