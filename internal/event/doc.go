// Package event turns one event folder into an output plan: the pages to
// write and the assets to copy. It performs no writes itself.
//
// Processing is strictly sequential:
//  1. Load the descriptor (fatal to the event on failure)
//  2. Collect challenge documents (unreadable files are dropped and reported)
//  3. Rewrite root-relative links once per body
//  4. Compose the aggregate index page
//  5. Compose one page per challenge
//  6. Classify assets
package event
