// Tripwise - Travel Recommendation and Trip Budget Estimation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tripwise

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tomtom215/tripwise/internal/classifier"
	"github.com/tomtom215/tripwise/internal/logging"
	"github.com/tomtom215/tripwise/internal/models"
	"github.com/tomtom215/tripwise/internal/recommend"
	"github.com/tomtom215/tripwise/internal/recommend/scoring"
)

type recommendOptions struct {
	interests models.Interests
	month     string
	age       int
	top       int
	model     string
}

type interestFlag struct {
	name string
	dst  *bool
}

// interestFlags binds each interest to a --flag named after it, with
// underscores turned into dashes.
func interestFlags(i *models.Interests) []interestFlag {
	return []interestFlag{
		{models.InterestNature, &i.Nature},
		{models.InterestAdventure, &i.Adventure},
		{models.InterestLuxury, &i.Luxury},
		{models.InterestCulture, &i.Culture},
		{models.InterestRelaxation, &i.Relaxation},
		{models.InterestWellness, &i.Wellness},
		{models.InterestLocalLife, &i.LocalLife},
		{models.InterestWildlife, &i.Wildlife},
		{models.InterestFood, &i.Food},
		{models.InterestSpirituality, &i.Spirituality},
		{models.InterestEcoTourism, &i.EcoTourism},
	}
}

func newRecommendCmd(root *rootOptions) *cobra.Command {
	opts := &recommendOptions{}

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Classify a traveler and rank the catalog offline",
		Long: `Runs the classifier on the given interests, age and travel month and
prints the top destinations from the local catalog with their scores and
ratings. No provider is called, so distances and budgets are not shown.`,
		Example: "  tripctl recommend --nature --culture --food --month March --age 29",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.config()
			if err != nil {
				return err
			}
			modelPath := opts.model
			if modelPath == "" {
				modelPath = cfg.Classifier.ArtifactPath
			}
			clf, err := classifier.Load(modelPath, logging.WithComponent("classifier"))
			if err != nil {
				return err
			}

			db, err := root.openDB()
			if err != nil {
				return err
			}
			defer closeDB(db)

			engineCfg := recommend.ConfigFrom(&cfg.Recommend)
			if opts.top > 0 {
				engineCfg.Scoring.TopN = opts.top
			}
			return runRecommend(cmd.Context(), cmd.OutOrStdout(), engineCfg, db, clf, opts)
		},
	}

	for _, f := range interestFlags(&opts.interests) {
		cmd.Flags().BoolVar(f.dst, strings.ReplaceAll(f.name, "_", "-"), false, "interested in "+strings.ReplaceAll(f.name, "_", " "))
	}
	cmd.Flags().StringVar(&opts.month, "month", "", "travel month, e.g. March (required)")
	cmd.Flags().IntVar(&opts.age, "age", 0, "traveler age in years (required)")
	cmd.Flags().IntVar(&opts.top, "top", 0, "number of destinations (default: recommend.scoring.top_n)")
	cmd.Flags().StringVar(&opts.model, "model", "", "classifier artifact (default: CLASSIFIER_PATH)")
	_ = cmd.MarkFlagRequired("month")
	_ = cmd.MarkFlagRequired("age")
	return cmd
}

// noQuestionnaires satisfies the engine for offline runs, which never look
// a user up.
type noQuestionnaires struct{}

func (noQuestionnaires) LatestQuestionnaire(context.Context, string) (*models.Questionnaire, error) {
	return nil, errors.New("questionnaires are not available offline")
}

func runRecommend(ctx context.Context, w io.Writer, cfg recommend.Config, catalog recommend.Catalog, clf recommend.Classifier, opts *recommendOptions) error {
	month, err := models.MonthFromName(opts.month)
	if err != nil {
		return err
	}
	season, err := models.SeasonForMonth(month)
	if err != nil {
		return err
	}

	engine, err := recommend.NewEngine(cfg, recommend.Deps{
		Catalog:        catalog,
		Questionnaires: noQuestionnaires{},
		Classifier:     clf,
	}, logging.WithComponent("recommend"))
	if err != nil {
		return err
	}
	scorer, err := scoring.New(cfg.Scoring)
	if err != nil {
		return err
	}

	profile := models.TravelerProfile{Age: opts.age, Season: season, Interests: opts.interests}
	labels, ranked, err := engine.Shortlist(ctx, profile)
	if err != nil {
		return err
	}

	names := labels.Names()
	if len(names) == 0 {
		names = []string{"none"}
	}
	if _, err := fmt.Fprintf(w, "Traveler types: %s\nSeason: %s\n", strings.Join(names, ", "), season); err != nil {
		return err
	}

	rows := make([][]string, len(ranked))
	for i, r := range ranked {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			r.Destination.Name,
			strconv.FormatFloat(r.Score, 'f', 3, 64),
			scorer.Rate(r.Score),
			strconv.FormatFloat(r.Destination.AvgCost, 'f', 0, 64),
		}
	}
	return renderTable(w, []string{"Rank", "Destination", "Score", "Rating", "Avg Cost"}, rows, 0, 2, 4)
}
