// Package harness runs scripted browsing sessions against the view engine.
//
// A scenario names a catalog, drives a view.Controller through a list of
// steps and checks the resulting view after each step and at the end. The
// step trace can be compared against a golden file.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: scenario_name
//	description: "What this scenario validates"
//	catalog: ../catalogs/sample.yaml   # or records: [...] or generate: 25
//	page_size: 10
//	flow:
//	  - filter: { category: Accessories, stock: low }
//	    expect:
//	      filtered: 3
//	      skus: [AC-BLT-003, AC-HAT-001, AC-SCF-009]
//	  - sort: retail
//	  - page: 4
//	    expect:
//	      rejected: PAGE_OUT_OF_RANGE
//	      page: 1
//	assertions:
//	  - type: view_contains
//	    sku: AC-BLT-003
//	  - type: final_state
//	    expect: { low_stock: 2, total_pages: 1 }
//
// Exactly one of catalog, records or generate supplies the dataset. Paths
// are relative to the scenario file. Each flow step performs exactly one of
// filter, sort, page, page_size, next, prev, reset, select or clear.
//
// # Assertion Types
//
// The following assertion types are supported:
//
//   - view_contains: The final page contains the SKU
//   - view_order: The SKUs appear on the final page in the given order
//   - view_count: The filtered subset has exactly Count records
//   - final_state: Counters and state fields match (subset match)
//
// # Deterministic Testing
//
// Every run uses a fixed session ID (scenario.session, or "test-session")
// so that traces and logs are reproducible.
package harness
