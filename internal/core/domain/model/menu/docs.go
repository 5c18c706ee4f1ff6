// Package menu models the purchasable catalog: menu items and the priced
// customizations that can be layered on top of them.
//
// The package includes:
//   - Category: the closed set of menu sections (Appetizer, Main Dish, Beverage, Dessert)
//   - Item: a catalog entry whose category is fixed at construction and which
//     carries one category specific flag (vegetarian, spicy, alcoholic, contains nuts)
//   - Customized: an item wrapped with extra toppings or side items
//   - Product: the capability both satisfy, which is what order lines reference
//
// Key business rules:
//   - Prices and customization surcharges are never negative
//   - A customized product reports the identity, name and category of its base item
//   - A customized product's price is the base price plus every surcharge
package menu
