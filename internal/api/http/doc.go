// Package http provides the gin handlers of the number theory API.
//
// Endpoints:
//   - GET  /                              service banner
//   - GET  /health                        health and registry stats
//   - GET  /calculations                  section based calculations (404 on bad input);
//                                         fiboSeq and egyptMult are aliases
//   - GET  /randomNumber/section/:section random input within the tools' limits
//   - GET  /services                      registered services and tools
//   - POST /services/discover             intent based discovery
//   - POST /services/execute              run a tool by ID
//   - GET  /metrics, /metrics/json        Prometheus and JSON metrics
package http
