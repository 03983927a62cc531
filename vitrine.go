// Package vitrine extracts structured product records from storefront
// pages. Given a source URL and the page's HTML it classifies the page
// as a single-product or category listing layout, locates each product
// field through ordered selector fallback chains, normalizes the raw
// text, and serializes the resulting records as a CSV table.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// http/, telegram/).
package vitrine
