package service

import (
	"context"
	"fmt"
	"recipe-api/logger"
	"recipe-api/model"
)

// SampleRecipes are created for the first configured user on an empty store.
var SampleRecipes = []model.RecipeDraft{
	{
		Title:        "Spaghetti Aglio e Olio",
		Ingredients:  []string{"500g Spaghetti", "6 Zehen Knoblauch", "100ml Olivenöl", "1 Chilischote", "Frische Petersilie"},
		Instructions: "Spaghetti in Salzwasser al dente kochen. Währenddessen Knoblauch in dünne Scheiben schneiden. Olivenöl in einer Pfanne erhitzen, Knoblauch und Chili darin goldbraun anbraten. Nudeln abgießen (etwas Kochwasser auffangen) und in die Pfanne geben. Alles vermengen und mit Petersilie bestreuen.",
		Tags:         []string{"schnell", "vegan", "herzhaft"},
	},
	{
		Title:        "Omas Fluffige Pfannkuchen",
		Ingredients:  []string{"200g Mehl", "4 Eier", "300ml Milch", "1 Prise Salz", "Mineralwasser (spritzig)", "Butter zum Braten"},
		Instructions: "Mehl, Eier, Milch und Salz zu einem glatten Teig verrühren. Einen Schuss Mineralwasser für die Fluffigkeit dazu. In einer Pfanne etwas Butter erhitzen. Mit einer Kelle Teig hineingeben und nacheinander goldbraune Pfannkuchen ausbacken. Nach Belieben mit Zimt & Zucker oder Nutella servieren.",
		Tags:         []string{"süß", "vegetarisch"},
	},
	{
		Title:        "Pizza Margherita (Selfmade)",
		Ingredients:  []string{"500g Pizzateig (oder Mehl/Hefe/Wasser)", "200ml Tomatensauce", "250g Mozzarella", "Frisches Basilikum", "Olivenöl"},
		Instructions: "Den Ofen auf 250°C (Ober-/Unterhitze) vorheizen. Teig ausrollen und auf ein Blech legen. Tomatensauce gleichmäßig verteilen. Mozzarella in Stücke zupfen und darauflegen. Für 10-12 Minuten backen, bis der Rand knusprig braun ist. Nach dem Backen mit frischem Basilikum und einem Schuss Olivenöl garnieren.",
		Tags:         []string{"herzhaft", "vegetarisch"},
	},
	{
		Title:        "Griechischer Bauernsalat",
		Ingredients:  []string{"3 große Tomaten", "1 Salatgurke", "1 Rote Zwiebel", "200g Feta-Käse", "Eine Handvoll schwarze Oliven", "Oregano, Olivenöl, Weinessig"},
		Instructions: "Gemüse waschen und grob würfeln. Zwiebel in feine Ringe schneiden. Alles in eine große Schüssel geben. Feta als ganzen Block darauflegen oder würfeln. Oliven hinzufügen. Großzügig mit Olivenöl und etwas Essig beträufeln und mit Oregano bestreuen. Dazu passt Weißbrot.",
		Tags:         []string{"schnell", "vegetarisch", "herzhaft"},
	},
	{
		Title:        "Double Choc Brownies",
		Ingredients:  []string{"200g Zartbitterschokolade", "150g Butter", "3 Eier", "150g Zucker", "100g Mehl", "Eine Handvoll Walnüsse (optional)"},
		Instructions: "Schokolade und Butter im Wasserbad schmelzen. Eier und Zucker schaumig schlagen, dann die Schokomasse unterrühren. Mehl und grob gehackte Nüsse unterheben. In eine gefettete Form füllen und bei 180°C ca. 20-25 Min backen. Wichtig: Sie sollen innen noch leicht klitschig (fudgy) sein!",
		Tags:         []string{"süß", "schnell", "vegetarisch"},
	},
	{
		Title:        "Green Power Smoothie",
		Ingredients:  []string{"1 Banane", "2 Handvoll Spinat (frisch)", "1 Apfel", "200ml Wasser oder Hafermilch", "Ein Spritzer Zitronensaft"},
		Instructions: "Alle Zutaten waschen bzw. schälen und grob zerkleinern. In einen Standmixer geben und auf höchster Stufe mixen, bis keine Stückchen mehr zu sehen sind. Sofort servieren für die meisten Vitamine.",
		Tags:         []string{"getränk", "vegan", "schnell", "süß"},
	},
	{
		Title:        "Chili con Carne (Klassisch)",
		Ingredients:  []string{"500g Rinderhackfleisch", "1 Dose Kidneybohnen", "1 Dose Mais", "1 Dose gehackte Tomaten", "2 Zwiebeln", "Knoblauch, Chili, Kreuzkümmel"},
		Instructions: "Zwiebeln und Knoblauch hacken und anbraten. Hackfleisch dazu und krümelig braten. Tomatenmark kurz mitrösten. Mit gehackten Tomaten ablöschen. Gewürze hinzufügen und 20 Min köcheln lassen. Bohnen und Mais erst kurz vor Schluss dazu geben, damit sie nicht zerkochen. Dazu passt Reis oder Baguette.",
		Tags:         []string{"herzhaft"},
	},
	{
		Title:        "Selbstgemachte Zitronenlimonade",
		Ingredients:  []string{"4 Bio-Zitronen", "100g Zucker (oder Honig)", "1 Liter Mineralwasser", "Eiswürfel", "Frische Minze"},
		Instructions: "Zitronen auspressen. Den Saft mit dem Zucker verrühren, bis er sich aufgelöst hat (evtl. leicht erwärmen). Mit kaltem Mineralwasser aufgießen. Eiswürfel und Minzezweige dazu geben. Kalt genießen!",
		Tags:         []string{"getränk", "schnell", "vegan", "süß"},
	},
}

// SeedSampleRecipes creates SampleRecipes for ownerID unless the owner
// already has recipes. It returns the number of recipes created.
func SeedSampleRecipes(ctx context.Context, recipes *RecipeService, ownerID string) (int, error) {
	log := logger.Log.WithField("owner_id", ownerID)

	existing, err := recipes.ListRecipes(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("check existing recipes: %w", err)
	}
	if len(existing) > 0 {
		log.Info("Store already contains recipes, skipping seed")
		return 0, nil
	}

	log.Info("Store is empty, creating sample recipes")
	for i, draft := range SampleRecipes {
		if _, err := recipes.CreateRecipe(ctx, ownerID, draft); err != nil {
			return i, fmt.Errorf("seed recipe %q: %w", draft.Title, err)
		}
	}
	log.WithField("count", len(SampleRecipes)).Info("Seed completed")
	return len(SampleRecipes), nil
}
