// Copyright 2022 someonegg. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/someonegg/teammatch/kmeans"
	"github.com/someonegg/teammatch/service"
)

func doForm(requestFile, outFile string, max int, verbose bool) error {
	var req service.MergeRequest
	if err := loadJSON(requestFile, &req); err != nil {
		return fmt.Errorf("load request file failed: %w", err)
	}
	if max > 0 {
		req.MaxTeamSize = max
	}

	svc := service.New(kmeans.New(kmeans.DefaultMaxIterations), nil)
	resp, summ, err := svc.MergeTeams(&req)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Printf("%+v\n", summ)
	}

	if err := writeJSON(outFile, resp); err != nil {
		return fmt.Errorf("write output file failed: %w", err)
	}
	return nil
}

func doSwap(requestFile, outFile string, verbose bool) error {
	var req service.SwapRequest
	if err := loadJSON(requestFile, &req); err != nil {
		return fmt.Errorf("load request file failed: %w", err)
	}

	svc := service.New(nil, nil)
	resp, summ, err := svc.SwapTeamMembers(&req)
	if err != nil {
		return err
	}
	if verbose {
		fmt.Printf("%+v\n", summ)
	}

	if err := writeJSON(outFile, resp); err != nil {
		return fmt.Errorf("write output file failed: %w", err)
	}
	return nil
}

func loadJSON(file string, v interface{}) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	return decoder.Decode(v)
}

func writeJSON(file string, v interface{}) error {
	var buf bytes.Buffer

	encoder := json.NewEncoder(&buf)
	encoder.SetIndent("", "   ")
	if err := encoder.Encode(v); err != nil {
		return err
	}

	return os.WriteFile(file, buf.Bytes(), 0644)
}
