// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package curate

import "github.com/pdiddy/curation-engine/pkg/types"

// DefaultConfig returns the built-in PHM (prognostics and health
// management) curation configuration, used when no config file supplies
// one. Venue figures and publisher lists reflect the domain's core
// journals; all of it is overridable through configuration.
func DefaultConfig() types.CurationConfig {
	return types.CurationConfig{
		ConceptWeights: map[string]float64{
			"prognostics":            0.40,
			"remaining useful life":  0.40,
			"predictive maintenance": 0.40,
			"health management":      0.30,
			"condition monitoring":   0.30,
			"health indicator":       0.30,
			"fault diagnosis":        0.25,
			"fault detection":        0.25,
			"anomaly detection":      0.25,
			"degradation":            0.25,
			"reliability":            0.05,
		},
		Venues: map[string]types.VenueInfo{
			"mechanical systems and signal processing":            {ImpactFactor: 8.4, Quartile: types.Q1, Category: "journal"},
			"ieee transactions on industrial electronics":         {ImpactFactor: 8.2, Quartile: types.Q1, Category: "journal"},
			"reliability engineering & system safety":             {ImpactFactor: 7.6, Quartile: types.Q1, Category: "journal"},
			"ieee transactions on reliability":                    {ImpactFactor: 5.9, Quartile: types.Q1, Category: "journal"},
			"expert systems with applications":                    {ImpactFactor: 8.5, Quartile: types.Q1, Category: "journal"},
			"engineering applications of artificial intelligence": {ImpactFactor: 8.0, Quartile: types.Q1, Category: "journal"},
			"applied soft computing":                              {ImpactFactor: 8.7, Quartile: types.Q1, Category: "journal"},
			"knowledge-based systems":                             {ImpactFactor: 8.8, Quartile: types.Q1, Category: "journal"},
			"journal of manufacturing systems":                    {ImpactFactor: 9.3, Quartile: types.Q1, Category: "journal"},
			"computers & industrial engineering":                  {ImpactFactor: 7.9, Quartile: types.Q1, Category: "journal"},
			"isa transactions":                                    {ImpactFactor: 7.3, Quartile: types.Q1, Category: "journal"},
			"measurement":                                         {ImpactFactor: 5.6, Quartile: types.Q1, Category: "journal"},
			"ieee transactions on instrumentation and measurement": {ImpactFactor: 5.6, Quartile: types.Q1, Category: "journal"},
			"neurocomputing":   {ImpactFactor: 6.0, Quartile: types.Q1, Category: "journal"},
			"information sciences": {ImpactFactor: 8.1, Quartile: types.Q1, Category: "journal"},
			"pattern recognition":  {ImpactFactor: 8.0, Quartile: types.Q1, Category: "journal"},
			"ieee access":          {ImpactFactor: 3.9, Quartile: types.Q2, Category: "journal"},
			"sensors":              {ImpactFactor: 3.8, Quartile: types.Q2, Category: "journal"},
			"annual conference of the prognostics and health management society": {Score: 0.9, Category: "conference"},
			"ieee conference on prognostics and health management":               {Score: 0.85, Category: "conference"},
		},
		NoveltyTerms: []string{
			"novel", "new approach", "first", "state-of-the-art",
			"outperforms", "breakthrough", "unprecedented",
		},
		Weights: types.ScoreWeights{
			Venue:    0.30,
			Citation: 0.25,
			Content:  0.20,
			Author:   0.15,
			Novelty:  0.10,
		},
		Policy: types.PolicyConfig{
			PublisherBlacklist: []string{
				"mdpi", "hindawi", "bentham science", "omics international",
				"scientific research publishing", "scirp", "insight medical publishing",
			},
			PublisherWhitelist: []string{
				"ieee", "elsevier", "springer", "nature publishing group",
				"wiley", "taylor & francis", "american chemical society",
				"american physical society",
			},
		},
	}
}
