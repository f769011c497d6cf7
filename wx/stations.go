// wx/stations.go
// Copyright(c) 2025 preflight contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package wx

import "github.com/mmp/preflight/math"

// fdStations gives the locations of the FD winds aloft forecast
// stations, matching the AWC product. Point2LL is (longitude, latitude).
var fdStations = map[string]math.Point2LL{
	"ABI": {-99.68, 32.41},
	"ABQ": {-106.62, 35.04},
	"ABR": {-98.42, 45.45},
	"ACK": {-70.06, 41.25},
	"ACY": {-74.57, 39.46},
	"AGC": {-79.93, 40.35},
	"ALB": {-73.80, 42.75},
	"ALS": {-105.87, 37.43},
	"AMA": {-101.71, 35.22},
	"AST": {-123.88, 46.16},
	"ATL": {-84.43, 33.64},
	"AVP": {-75.73, 41.33},
	"AXN": {-95.39, 45.87},
	"BAM": {-116.87, 40.60},
	"BAX": {-84.72, 44.43},
	"BCE": {-112.15, 37.70},
	"BDL": {-72.68, 41.94},
	"BFF": {-103.60, 41.87},
	"BGR": {-68.83, 44.81},
	"BHM": {-86.75, 33.56},
	"BIH": {-118.36, 37.37},
	"BIL": {-108.54, 45.81},
	"BLH": {-114.72, 33.62},
	"BNA": {-86.68, 36.12},
	"BOI": {-116.22, 43.56},
	"BOS": {-71.01, 42.36},
	"BRL": {-91.12, 40.78},
	"BTR": {-91.15, 30.53},
	"BUF": {-78.73, 42.93},
	"BYI": {-113.77, 42.54},
	"CAR": {-68.02, 46.87},
	"CBE": {-78.76, 39.41},
	"CEZ": {-108.63, 37.30},
	"CHS": {-80.04, 32.90},
	"CLE": {-81.85, 41.41},
	"CLT": {-80.94, 35.21},
	"CMH": {-82.89, 39.99},
	"CNY": {-109.75, 38.75},
	"COD": {-104.16, 44.52},
	"CON": {-71.50, 43.20},
	"COU": {-92.22, 38.82},
	"CRP": {-97.51, 27.77},
	"CVG": {-84.67, 39.05},
	"CYS": {-104.81, 41.15},
	"DAB": {-81.05, 29.18},
	"DAL": {-96.85, 32.85},
	"DEN": {-104.66, 39.85},
	"DFW": {-97.04, 32.90},
	"DLH": {-92.19, 46.84},
	"DRT": {-100.92, 29.37},
	"DSM": {-93.66, 41.53},
	"DTW": {-83.35, 42.21},
	"EKO": {-115.79, 40.82},
	"ELP": {-106.38, 31.81},
	"EVV": {-87.53, 38.04},
	"EWR": {-74.17, 40.69},
	"FAI": {-147.86, 64.81},
	"FAR": {-96.81, 46.92},
	"FAT": {-119.72, 36.78},
	"FCA": {-114.26, 48.31},
	"FLG": {-111.67, 35.13},
	"FLL": {-80.15, 26.07},
	"FMN": {-108.23, 36.74},
	"FSD": {-96.74, 43.58},
	"FSM": {-94.37, 35.34},
	"GAG": {-99.78, 36.30},
	"GEG": {-117.53, 47.62},
	"GGG": {-94.71, 32.38},
	"GJT": {-108.53, 39.12},
	"GLD": {-101.70, 39.37},
	"GRB": {-88.13, 44.48},
	"GRR": {-85.52, 42.88},
	"GSO": {-79.94, 36.10},
	"GSP": {-82.22, 34.90},
	"GTF": {-111.37, 47.48},
	"HLN": {-111.98, 46.61},
	"HOU": {-95.28, 29.65},
	"HTS": {-82.56, 38.37},
	"HUF": {-87.31, 39.45},
	"HYS": {-99.27, 38.85},
	"IAD": {-77.46, 38.94},
	"ICT": {-97.43, 37.65},
	"ILM": {-77.90, 34.27},
	"IND": {-86.29, 39.71},
	"INL": {-93.40, 48.57},
	"JAC": {-110.74, 43.60},
	"JAN": {-90.07, 32.31},
	"JAX": {-81.69, 30.49},
	"JFK": {-73.78, 40.63},
	"JNU": {-134.58, 58.36},
	"LAX": {-118.41, 33.94},
	"LAS": {-115.15, 36.08},
	"LBB": {-101.82, 33.66},
	"LCH": {-93.22, 30.12},
	"LIT": {-92.22, 34.73},
	"LKV": {-120.40, 42.16},
	"LNK": {-96.76, 40.85},
	"LRD": {-99.46, 27.54},
	"LSE": {-91.26, 43.88},
	"MAF": {-102.21, 31.95},
	"MCI": {-94.71, 39.29},
	"MCO": {-81.31, 28.43},
	"MDT": {-76.76, 40.19},
	"MEM": {-89.98, 35.04},
	"MFR": {-122.87, 42.37},
	"MGM": {-86.39, 32.30},
	"MIA": {-80.29, 25.79},
	"MKE": {-87.90, 42.95},
	"MLB": {-80.64, 28.10},
	"MOB": {-88.24, 30.69},
	"MSN": {-89.34, 43.14},
	"MSO": {-114.09, 46.92},
	"MSP": {-93.22, 44.88},
	"MSY": {-90.26, 29.99},
	"MTO": {-88.27, 39.48},
	"OAK": {-122.22, 37.72},
	"OKC": {-97.60, 35.39},
	"OMA": {-95.90, 41.30},
	"ONP": {-124.06, 44.58},
	"ORD": {-87.91, 41.97},
	"OTH": {-124.25, 43.42},
	"PDX": {-122.60, 45.59},
	"PHL": {-75.24, 39.87},
	"PHX": {-112.01, 33.44},
	"PIH": {-112.60, 42.91},
	"PIT": {-80.23, 40.49},
	"PNS": {-87.19, 30.47},
	"PRC": {-112.42, 34.65},
	"PSC": {-119.12, 46.26},
	"PUB": {-104.50, 38.29},
	"PVD": {-71.43, 41.72},
	"RAP": {-103.06, 43.97},
	"RDD": {-122.29, 40.51},
	"RDU": {-78.79, 35.87},
	"RIC": {-77.32, 37.50},
	"RNO": {-119.78, 39.50},
	"ROA": {-79.97, 37.32},
	"ROW": {-104.53, 33.30},
	"SAL": {-97.65, 38.84},
	"SAN": {-117.19, 32.73},
	"SAT": {-98.47, 29.53},
	"SAV": {-81.20, 32.13},
	"SBA": {-119.84, 34.43},
	"SBN": {-86.32, 41.71},
	"SEA": {-122.31, 47.45},
	"SFO": {-122.38, 37.62},
	"SGF": {-93.39, 37.24},
	"SHV": {-93.83, 32.45},
	"SLC": {-111.97, 40.78},
	"SPS": {-98.49, 33.99},
	"STL": {-90.37, 38.75},
	"TLH": {-84.35, 30.40},
	"TPA": {-82.53, 27.97},
	"TUL": {-95.89, 36.20},
	"TUS": {-110.94, 32.12},
	"TWF": {-114.48, 42.48},
	"VCT": {-96.93, 28.85},
	"XMR": {-80.57, 28.47},
	"YKM": {-120.54, 46.57},
	// Alaska
	"ANC": {-150.02, 61.17},
	"BET": {-161.84, 60.78},
	"CDV": {-145.48, 60.49},
	"OME": {-165.44, 64.51},
	"SNP": {-170.22, 57.17},
	"YAK": {-139.66, 59.51},
}

// StationLocation returns the location of an FD forecast station.
func StationLocation(id string) (math.Point2LL, bool) {
	p, ok := fdStations[id]
	return p, ok
}
