package assembler

// BlogCSS is the design-system style block emitted once at the top of
// every assembled document. It is a constant so that repeated renders
// stay byte-identical and so the export shell can strip and re-place it.
const BlogCSS = `
    <style>
      @import url('https://fonts.googleapis.com/css2?family=Comfortaa:wght@400;700&family=Open+Sans:wght@400;600&display=swap');

      #cuot-blog-wrapper {
        font-family: 'Open Sans', sans-serif;
        color: #575756;
        line-height: 1.6;
        max-width: 1000px;
        margin: 0 auto;
      }
      /* Headings */
      #cuot-blog-wrapper h2,
      #cuot-blog-wrapper h3 {
        font-family: 'Comfortaa', cursive;
        color: #ec7b5d;
        font-weight: 700;
        margin-bottom: 0.5em;
      }
      #cuot-blog-wrapper h2 { font-size: 1.8rem; margin-top: 1.5em; scroll-margin-top: 100px; }
      #cuot-blog-wrapper h3 { font-size: 1.4rem; margin-top: 1.2em; }

      #cuot-blog-wrapper p { margin-bottom: 1em; }

      /* Keyword Highlighting */
      .cuot-keyword { color: #ec7b5d; font-weight: 700; }

      #cuot-blog-wrapper strong { color: #ec7b5d; font-weight: 600; }
      #cuot-blog-wrapper ul { margin-bottom: 1em; padding-left: 1.5em; list-style-type: disc; }
      #cuot-blog-wrapper li { margin-bottom: 0.5em; }

      /* Zero-Click Snippet */
      .cuot-snippet {
          background-color: #fdf6f4;
          border-left: 5px solid #ec7b5d;
          padding: 1rem 1.5rem;
          margin-bottom: 1.5rem;
          font-weight: 600;
          color: #575756;
          border-radius: 0 8px 8px 0;
      }

      /* Semantic Entity List */
      .cuot-entity-list dl {
          display: grid;
          grid-template-columns: auto 1fr;
          gap: 1rem 2rem;
          background: #fff;
          border: 1px solid #eee;
          padding: 2rem;
          border-radius: 12px;
          margin: 2rem 0;
      }
      .cuot-entity-list dt {
          font-family: 'Comfortaa', cursive;
          font-weight: 700;
          color: #ec7b5d;
      }
      .cuot-entity-list dd {
          margin: 0;
          color: #666;
          font-size: 0.95rem;
      }

      /* Layout Utilities */
      .cuot-section { margin-bottom: 2.5rem; clear: both; }
      .cuot-grid { display: flex; flex-wrap: wrap; gap: 3rem; align-items: center; }
      .cuot-col { flex: 1 1 300px; }

      /* Images */
      .cuot-img-responsive {
          width: 100%;
          max-width: 100%;
          height: auto;
          border-radius: 12px;
          box-shadow: 0 4px 12px rgba(0,0,0,0.08);
          display: block;
          transition: transform 0.4s cubic-bezier(0.25, 0.46, 0.45, 0.94), box-shadow 0.4s ease;
      }

      .cuot-img-responsive:hover {
          transform: scale(1.015);
          box-shadow: 0 12px 24px rgba(0,0,0,0.12);
      }

      /* Header image is the only one allowed to be heroic */
      .cuot-header-image {
          width: 100%;
          height: auto;
          max-height: 500px;
          object-fit: cover;
          border-radius: 12px;
          box-shadow: 0 6px 16px rgba(0,0,0,0.12);
          display: block;
          margin-bottom: 2rem;
          transition: transform 0.5s ease, box-shadow 0.5s ease;
      }

      .cuot-header-image:hover {
          transform: translateY(-2px);
          box-shadow: 0 15px 30px rgba(0,0,0,0.15);
      }

      /* FAQ Section (Details/Summary) */
      .cuot-faq-container {
          background: #fdf6f4;
          border-radius: 16px;
          padding: 3rem;
          margin-top: 4rem;
      }

      details.cuot-faq-item {
          background: white;
          margin-bottom: 1rem;
          border-radius: 8px;
          padding: 1rem 1.5rem;
          box-shadow: 0 2px 5px rgba(0,0,0,0.03);
          border-left: 4px solid #ec7b5d;
          transition: all 0.3s ease;
      }

      details.cuot-faq-item[open] {
          box-shadow: 0 6px 12px rgba(236, 123, 93, 0.1);
          padding-bottom: 1.5rem;
      }

      summary.cuot-faq-question {
          font-family: 'Comfortaa', cursive;
          color: #ec7b5d;
          font-weight: 700;
          font-size: 1.1rem;
          cursor: pointer;
          list-style: none;
          display: flex;
          justify-content: space-between;
          align-items: center;
          outline: none;
      }

      summary.cuot-faq-question::-webkit-details-marker {
          display: none;
      }

      summary.cuot-faq-question::after {
          content: '+';
          font-size: 1.5rem;
          font-weight: 300;
          color: #ec7b5d;
          transition: transform 0.3s ease;
      }

      details[open] summary.cuot-faq-question::after {
          transform: rotate(45deg);
      }

      .cuot-faq-answer {
          font-size: 0.95rem;
          color: #666;
          margin-top: 0.5rem;
          padding-top: 0.5rem;
          border-top: 1px dashed #eee;
          line-height: 1.7;
      }

      /* Responsive Video Container */
      .cuot-video-container {
        position: relative;
        padding-bottom: 56.25%; /* 16:9 */
        height: 0;
        overflow: hidden;
        max-width: 100%;
        background: #000;
        border-radius: 12px;
        margin: 2rem auto;
        box-shadow: 0 4px 12px rgba(0,0,0,0.1);
      }
      .cuot-video-container iframe {
        position: absolute;
        top: 0;
        left: 0;
        width: 100%;
        height: 100%;
        border: 0;
      }

      /* Buttons / CTA */
      .cuot-btn-wrapper {
        margin-top: 3rem;
        margin-bottom: 2rem;
        clear: both;
      }

      .cuot-btn {
        display: inline-block;
        background-color: #ec7b5d;
        color: #ffffff !important;
        font-family: 'Comfortaa', cursive;
        font-weight: 700;
        font-size: 1rem;
        padding: 12px 32px;
        border-radius: 8px;
        text-decoration: none;
        transition: all 0.3s cubic-bezier(0.25, 0.8, 0.25, 1);
        box-shadow: 0 4px 10px rgba(236, 123, 93, 0.25);
        text-align: center;
        border: 2px solid transparent;
      }
      .cuot-btn:hover {
        background-color: #d66a4d;
        transform: translateY(-2px) scale(1.02);
        box-shadow: 0 8px 20px rgba(236, 123, 93, 0.4);
      }

      /* Table of Contents */
      .cuot-toc {
          background-color: #fff;
          border: 1px solid #eee;
          border-radius: 8px;
          padding: 1.5rem;
          margin-bottom: 2rem;
          display: inline-block;
          min-width: 250px;
          transition: box-shadow 0.3s ease;
      }
      .cuot-toc:hover {
          box-shadow: 0 6px 12px rgba(0,0,0,0.05);
      }
      .cuot-toc-title {
          font-family: 'Comfortaa', cursive;
          color: #ec7b5d;
          font-weight: 700;
          margin-bottom: 0.5rem;
          display: block;
      }
      .cuot-toc-list {
          list-style: none !important;
          padding-left: 0 !important;
          margin-bottom: 0 !important;
      }
      .cuot-toc-list li {
          margin-bottom: 0.25rem !important;
      }
      .cuot-toc-list a {
          text-decoration: none;
          color: #575756;
          font-size: 0.95rem;
          border-bottom: 1px dotted transparent;
          transition: all 0.2s;
      }
      .cuot-toc-list a:hover {
          color: #ec7b5d;
          border-bottom-color: #ec7b5d;
          padding-left: 4px;
      }

      /* Feature Highlight Box */
      .cuot-feature-highlight {
          background-color: #fdf6f4;
          border-left: 6px solid #ec7b5d;
          padding: 2rem;
          border-radius: 0 12px 12px 0;
          margin: 2rem 0;
      }

      /* Quote Block */
      .cuot-quote-block {
          text-align: center;
          margin: 3rem 0;
          padding: 2rem;
      }
      .cuot-quote-text {
          font-family: 'Comfortaa', cursive;
          font-size: 1.4rem;
          font-weight: 700;
          color: #ec7b5d;
          line-height: 1.4;
          margin-bottom: 1rem;
      }
      .cuot-quote-author {
          font-size: 0.9rem;
          text-transform: uppercase;
          letter-spacing: 1px;
          color: #888;
      }

      /* CTA Block */
      .cuot-cta-block {
        background-color: #fdf6f4;
        padding: 3rem;
        border-radius: 16px;
        text-align: center;
        border: 2px solid #fff;
        box-shadow: 0 4px 12px rgba(0,0,0,0.05);
        transition: transform 0.3s ease;
      }
      .cuot-cta-block:hover {
         transform: translateY(-2px);
         box-shadow: 0 8px 20px rgba(0,0,0,0.08);
      }

      @media (max-width: 768px) {
        .cuot-grid { flex-direction: column; }
        .cuot-entity-list dl { grid-template-columns: 1fr; gap: 0.5rem; }
        .cuot-btn { width: 100%; box-sizing: border-box; }
      }
    </style>
  `
