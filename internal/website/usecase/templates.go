package usecase

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/chems34/IA-webgen/internal/domain"
	"github.com/chems34/IA-webgen/internal/infrastructure/llm"
)

// Static site templates, used directly by generate-from-template and as the
// degradation path when AI generation fails.

type SiteTemplate struct {
	Key         string
	Name        string
	SiteType    string
	Description string

	html *template.Template
	css  *template.Template
	js   *template.Template
}

type templateData struct {
	BusinessName string
	PrimaryColor string
}

func (t *SiteTemplate) Render(businessName, primaryColor string) (*llm.GeneratedSite, error) {
	data := templateData{BusinessName: businessName, PrimaryColor: primaryColor}

	render := func(tmpl *template.Template) (string, error) {
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, data); err != nil {
			return "", err
		}
		return buf.String(), nil
	}

	html, err := render(t.html)
	if err != nil {
		return nil, fmt.Errorf("rendering template %s html: %w", t.Key, err)
	}
	css, err := render(t.css)
	if err != nil {
		return nil, fmt.Errorf("rendering template %s css: %w", t.Key, err)
	}
	js, err := render(t.js)
	if err != nil {
		return nil, fmt.Errorf("rendering template %s js: %w", t.Key, err)
	}

	return &llm.GeneratedSite{HTML: html, CSS: css, JS: js}, nil
}

func mustTemplate(name, text string) *template.Template {
	return template.Must(template.New(name).Parse(text))
}

var siteTemplates = []*SiteTemplate{
	{
		Key:         "vitrine-simple",
		Name:        "Vitrine Simple",
		SiteType:    domain.SiteTypeVitrine,
		Description: "Site vitrine une page : présentation, services, contact",
		html: mustTemplate("vitrine-html", `<header class="hero">
  <nav>
    <span class="brand">{{.BusinessName}}</span>
    <ul><li><a href="#services">Services</a></li><li><a href="#contact">Contact</a></li></ul>
  </nav>
  <h1>{{.BusinessName}}</h1>
  <p class="tagline">Bienvenue chez {{.BusinessName}}</p>
  <a class="cta" href="#contact">Nous contacter</a>
</header>
<section id="services">
  <h2>Nos services</h2>
  <div class="cards">
    <div class="card"><h3>Qualité</h3><p>Un savoir-faire reconnu.</p></div>
    <div class="card"><h3>Proximité</h3><p>Une équipe à votre écoute.</p></div>
    <div class="card"><h3>Réactivité</h3><p>Des réponses rapides.</p></div>
  </div>
</section>
<section id="contact">
  <h2>Contact</h2>
  <form id="contact-form">
    <input type="email" placeholder="Votre email" required>
    <textarea placeholder="Votre message" required></textarea>
    <button type="submit">Envoyer</button>
  </form>
</section>
<footer><p>&copy; {{.BusinessName}}</p></footer>`),
		css: mustTemplate("vitrine-css", `:root { --primary: {{.PrimaryColor}}; }
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Segoe UI', Arial, sans-serif; color: #1f2937; }
.hero { background: var(--primary); color: #fff; padding: 2rem; min-height: 60vh; }
.hero nav { display: flex; justify-content: space-between; align-items: center; }
.hero nav ul { display: flex; gap: 1.5rem; list-style: none; }
.hero nav a { color: #fff; text-decoration: none; }
.hero h1 { margin-top: 4rem; font-size: 2.5rem; }
.cta { display: inline-block; margin-top: 1.5rem; background: #fff; color: var(--primary); padding: 0.75rem 1.5rem; border-radius: 8px; text-decoration: none; font-weight: bold; }
section { padding: 3rem 2rem; max-width: 960px; margin: 0 auto; }
.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(220px, 1fr)); gap: 1rem; margin-top: 1.5rem; }
.card { border: 1px solid #e5e7eb; border-radius: 8px; padding: 1.5rem; }
form { display: flex; flex-direction: column; gap: 1rem; margin-top: 1.5rem; }
input, textarea { padding: 0.75rem; border: 1px solid #d1d5db; border-radius: 6px; }
button { background: var(--primary); color: #fff; border: none; padding: 0.75rem; border-radius: 6px; cursor: pointer; }
footer { text-align: center; padding: 2rem; background: #f9fafb; }`),
		js: mustTemplate("vitrine-js", `document.getElementById('contact-form').addEventListener('submit', function (e) {
  e.preventDefault();
  alert('Merci ! Nous revenons vers vous rapidement.');
  this.reset();
});`),
	},
	{
		Key:         "boutique-moderne",
		Name:        "Boutique Moderne",
		SiteType:    domain.SiteTypeEcommerce,
		Description: "Page boutique avec grille de produits",
		html: mustTemplate("ecommerce-html", `<header class="topbar">
  <span class="brand">{{.BusinessName}}</span>
  <span id="cart-count">Panier (0)</span>
</header>
<main>
  <h1>La boutique {{.BusinessName}}</h1>
  <div class="products">
    <div class="product"><h3>Produit vedette</h3><p class="price">29,90 &euro;</p><button class="add">Ajouter</button></div>
    <div class="product"><h3>Nouveauté</h3><p class="price">19,90 &euro;</p><button class="add">Ajouter</button></div>
    <div class="product"><h3>Classique</h3><p class="price">14,90 &euro;</p><button class="add">Ajouter</button></div>
  </div>
</main>
<footer><p>{{.BusinessName}} - Paiement sécurisé</p></footer>`),
		css: mustTemplate("ecommerce-css", `:root { --primary: {{.PrimaryColor}}; }
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: 'Segoe UI', Arial, sans-serif; color: #111827; }
.topbar { display: flex; justify-content: space-between; padding: 1rem 2rem; background: var(--primary); color: #fff; }
main { max-width: 960px; margin: 2rem auto; padding: 0 1rem; }
.products { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 1.5rem; margin-top: 2rem; }
.product { border: 1px solid #e5e7eb; border-radius: 10px; padding: 1.5rem; text-align: center; }
.price { color: var(--primary); font-weight: bold; margin: 0.75rem 0; }
.add { background: var(--primary); color: #fff; border: none; padding: 0.5rem 1.25rem; border-radius: 6px; cursor: pointer; }
footer { text-align: center; padding: 2rem; background: #f9fafb; margin-top: 3rem; }`),
		js: mustTemplate("ecommerce-js", `let count = 0;
document.querySelectorAll('.add').forEach(function (btn) {
  btn.addEventListener('click', function () {
    count++;
    document.getElementById('cart-count').textContent = 'Panier (' + count + ')';
  });
});`),
	},
	{
		Key:         "blog-epure",
		Name:        "Blog Épuré",
		SiteType:    domain.SiteTypeBlog,
		Description: "Blog minimaliste avec liste d'articles",
		html: mustTemplate("blog-html", `<header>
  <h1>{{.BusinessName}}</h1>
  <p>Le blog de {{.BusinessName}}</p>
</header>
<main>
  <article>
    <h2>Premier article</h2>
    <p class="meta">Publié aujourd'hui</p>
    <p>Bienvenue sur le blog. Les prochains articles arrivent bientôt.</p>
  </article>
  <article>
    <h2>Notre histoire</h2>
    <p class="meta">Publié cette semaine</p>
    <p>Quelques mots sur {{.BusinessName}} et ce qui nous anime.</p>
  </article>
</main>
<footer><p>&copy; {{.BusinessName}}</p></footer>`),
		css: mustTemplate("blog-css", `:root { --primary: {{.PrimaryColor}}; }
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: Georgia, 'Times New Roman', serif; color: #1f2937; line-height: 1.7; }
header { text-align: center; padding: 3rem 1rem; border-bottom: 3px solid var(--primary); }
header h1 { color: var(--primary); }
main { max-width: 680px; margin: 0 auto; padding: 2rem 1rem; }
article { margin-bottom: 2.5rem; }
article h2 { color: var(--primary); margin-bottom: 0.25rem; }
.meta { font-size: 0.85rem; color: #6b7280; margin-bottom: 0.75rem; }
footer { text-align: center; padding: 2rem; color: #6b7280; }`),
		js: mustTemplate("blog-js", `console.log('blog ready');`),
	},
}

// TemplateByKey returns nil when no template matches.
func TemplateByKey(key string) *SiteTemplate {
	for _, t := range siteTemplates {
		if t.Key == key {
			return t
		}
	}
	return nil
}

// TemplateForSiteType returns the first template matching the site type,
// falling back to the vitrine template for unknown types.
func TemplateForSiteType(siteType string) *SiteTemplate {
	for _, t := range siteTemplates {
		if t.SiteType == siteType {
			return t
		}
	}
	return siteTemplates[0]
}

func Templates() []*SiteTemplate {
	return siteTemplates
}
