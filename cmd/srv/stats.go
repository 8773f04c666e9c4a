package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ronin-planets/backend/internal/model"
	"github.com/ronin-planets/backend/pkg/xcontext"

	"github.com/urfave/cli/v2"
)

func (s *srv) startStats(*cli.Context) error {
	s.loadLedger()
	s.loadDomains()

	admin := xcontext.Configs(s.ctx).Admin.Address
	if admin == "" {
		return errors.New("admin address is not configured")
	}

	resp, err := s.statisticDomain.GetStatistics(
		xcontext.WithRequestUserID(s.ctx, admin), &model.GetStatisticsRequest{})
	if err != nil {
		return err
	}

	b, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return err
	}

	fmt.Println(string(b))
	return nil
}
